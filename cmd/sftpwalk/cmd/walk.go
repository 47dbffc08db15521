package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oxcroft/sftpwire"
	"github.com/oxcroft/sftpwire/transport"
)

func runWalk(_ *cobra.Command, _ []string) error {
	if err := configureLogging(); err != nil {
		return err
	}

	host := viper.GetString("host")
	if host == "" {
		return fmt.Errorf("--host is required")
	}
	user := viper.GetString("user")
	port := viper.GetInt("port")
	identity := viper.GetString("identity")
	remotePath := viper.GetString("remote-path")

	log := logrus.WithFields(logrus.Fields{"host": host, "port": port, "user": user})
	log.Info("dialing")

	client, err := transport.NewClient(user, host, port, identity)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", host, err)
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("starting sftp session: %w", err)
	}
	defer func() { _ = session.Close() }()

	version := session.Version()
	log.WithFields(logrus.Fields{
		"version":      version.Version,
		"posix-rename": version.Extensions.PosixRename,
		"hardlink":     version.Extensions.Hardlink,
		"fsync":        version.Extensions.Fsync,
		"limits":       version.Extensions.Limits,
		"expand-path":  version.Extensions.ExpandPath,
	}).Info("handshake complete")

	demonstrateExtensions(session, remotePath, log)

	visitor := transport.NewUnseenVisitor(nil, nil)
	if err := transport.Walk(session, remotePath, visitor); err != nil {
		return fmt.Errorf("walking %s: %w", remotePath, err)
	}

	for _, found := range visitor.Found() {
		printEntry(found)
	}
	return nil
}

func printEntry(found transport.WalkEntry) {
	perm, hasPerm := found.Entry.Attrs.Permissions()
	ft, _ := found.Entry.Attrs.FileType()
	modeStr := "?"
	if hasPerm {
		modeStr = ft.String(perm)
	}
	size, _ := found.Entry.Attrs.Size()
	fmt.Printf("%s %10d %s\n", modeStr, size, transport.RemoteJoin(found.DirPath, found.Entry.Filename))
}

func demonstrateExtensions(session *transport.Session, remotePath string, log *logrus.Entry) {
	ext := session.Version().Extensions
	if ext.ExpandPath {
		resp, err := session.Do(sftpwire.ExpandPathRequest{Path: remotePath})
		if err != nil {
			log.WithError(err).Debug("expand-path failed")
		} else if name, ok := resp.Kind.(sftpwire.NameResponse); ok && len(name.Entries) > 0 {
			log.WithField("expanded", name.Entries[0].Filename).Debug("expand-path")
		}
	}
	if ext.Limits {
		if raw, err := session.DoExtended(sftpwire.LimitsRequest{}); err != nil {
			log.WithError(err).Debug("limits failed")
		} else {
			log.WithField("limits-reply-bytes", len(raw)).Debug("limits")
		}
	}
	resp, err := session.Do(sftpwire.RealpathRequest{Path: remotePath})
	if err != nil {
		log.WithError(err).Debug("realpath failed")
		return
	}
	if name, ok := resp.Kind.(sftpwire.NameResponse); ok && len(name.Entries) > 0 {
		log.WithField("realpath", name.Entries[0].Filename).Debug("realpath")
	}
}

// Command sftpwalk dials an SFTP v3 server, performs the version
// handshake, and walks a remote directory tree, demonstrating the
// sftpwire codec driven over a real SSH connection.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/oxcroft/sftpwire/cmd/sftpwalk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("sftpwalk failed")
		os.Exit(1)
	}
}

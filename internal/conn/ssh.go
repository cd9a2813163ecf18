package conn

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/ssh"
)

//go:generate mockgen -package mocks -destination ../mocks/conn.go . SSHConnection

// SSHConnection is an established ssh connection to a provisioning target
type SSHConnection interface {
	// ExecCommand runs cmd on remote host and returns combined output
	ExecCommand(cmd string) ([]byte, error)
	// ExecCommandPiped runs cmd with std{in,out,err} attached to current
	// terminal
	ExecCommandPiped(cmd string) error
	// CopyFilesOverSftp copies local files to remote destinations
	CopyFilesOverSftp(srcDst ...SftpCopySrcDest) error
	// FetchFilesOverSftp downloads remote files to local destinations
	FetchFilesOverSftp(srcDst ...SftpCopySrcDest) error
	// GetClient exposes the underlying ssh client
	GetClient() *ssh.Client
}

var _ (SSHConnection) = (*sshConnection)(nil)

type sshConnection struct {
	client *ssh.Client
}

// NewSSHConnection attempts to connect to serverIp via ssh on default 22 port
func NewSSHConnection(serverIp, user, idFilePath string) (SSHConnection, error) {
	client, err := NewSSHClient(serverIp, user, idFilePath)
	if err != nil {
		return nil, err
	}
	return &sshConnection{client: client}, nil
}

func (s *sshConnection) GetClient() *ssh.Client {
	return s.client
}

func (s *sshConnection) ExecCommand(cmd string) ([]byte, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	return sess.CombinedOutput(cmd)
}

func (s *sshConnection) ExecCommandPiped(cmd string) error {
	sess, err := s.client.NewSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.Stdin = os.Stdin
	sess.Stdout = os.Stdout
	sess.Stderr = os.Stderr

	return sess.Run(cmd)
}

func (s *sshConnection) CopyFilesOverSftp(srcDst ...SftpCopySrcDest) error {
	return CopyFilesOverSftp(s.client, srcDst...)
}

func (s *sshConnection) FetchFilesOverSftp(srcDst ...SftpCopySrcDest) error {
	return FetchFilesOverSftp(s.client, srcDst...)
}

// NewSSHClient attempts to connect to server via ssh on default 22 port
func NewSSHClient(serverIp, user, idFilePath string) (*ssh.Client, error) {
	pk, err := os.ReadFile(idFilePath)
	if err != nil {
		return nil, err
	}

	signer, err := ssh.ParsePrivateKey(pk)
	if err != nil {
		return nil, fmt.Errorf("parsing private key %s: %v", idFilePath, err)
	}

	config := &ssh.ClientConfig{
		User:            user,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		Timeout:         time.Second * 10,
	}

	return ssh.Dial("tcp", serverIp+":22", config)
}

package listener

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/crypto/ssh"
)

// LoadHostKey reads a PEM encoded private key from path. If persist is set
// and the file does not exist, a new ed25519 key is generated and written
// there first.
func LoadHostKey(path string, persist bool) (ssh.Signer, error) {
	keyBytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && persist {
		slog.Info("generating ssh host key", "path", path)
		keyBytes, err = writeHostKey(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading host key %q: %w", path, err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", path, err)
	}
	return signer, nil
}

// GenerateHostKey creates an ephemeral ed25519 host key.
func GenerateHostKey() (ssh.Signer, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating ephemeral key: %w", err)
	}
	signer, err := ssh.NewSignerFromKey(privKey)
	if err != nil {
		return nil, fmt.Errorf("creating signer from ephemeral key: %w", err)
	}
	return signer, nil
}

func writeHostKey(path string) ([]byte, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}
	block, err := ssh.MarshalPrivateKey(privKey, "go-adventure host key")
	if err != nil {
		return nil, fmt.Errorf("marshalling key: %w", err)
	}
	data := pem.EncodeToMemory(block)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("writing key: %w", err)
	}
	return data, nil
}

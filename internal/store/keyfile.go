package store

import (
	"encoding/pem"
	"os"

	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/signature"
	"cryptoshim/internal/util/memzero"
)

// PEM block types.
const (
	PrivateKeyBlock   = "PRIVATE KEY"
	EncryptedKeyBlock = "CRYPTOSHIM ENCRYPTED KEY"
)

// KeyFile reads and writes private key files at one path.
type KeyFile struct {
	Path   string
	Scrypt ScryptParams
}

// NewKeyFile returns a KeyFile using DefaultScryptParams.
func NewKeyFile(path string) *KeyFile {
	return &KeyFile{Path: path, Scrypt: DefaultScryptParams}
}

// Save writes s as PEM. A non-empty passphrase encrypts the key.
func (k *KeyFile) Save(s signature.Signer, passphrase string) error {
	der, err := s.PKCS8()
	if err != nil {
		return err
	}
	defer memzero.Zero(der)

	b, err := EncodePEM(der, passphrase, k.Scrypt)
	if err != nil {
		return err
	}
	defer memzero.Zero(b)
	return writeFile(k.Path, b, 0o600)
}

// Load reads the key and detects its scheme from the PKCS#8 algorithm.
func (k *KeyFile) Load(passphrase string) (signature.Signer, error) {
	b, err := os.ReadFile(k.Path)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(b)

	der, err := DecodePEM(b, passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(der)
	return signature.DetectPKCS8(der)
}

// EncodePEM wraps PKCS#8 DER in a PEM block, sealing it first when
// passphrase is non-empty.
func EncodePEM(der []byte, passphrase string, params ScryptParams) ([]byte, error) {
	if passphrase == "" {
		return pem.EncodeToMemory(&pem.Block{Type: PrivateKeyBlock, Bytes: der}), nil
	}
	env, err := seal(passphrase, der, params)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: EncryptedKeyBlock, Bytes: env}), nil
}

// DecodePEM returns the PKCS#8 DER inside data.
func DecodePEM(data []byte, passphrase string) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, cerrors.Construction("key file: no PEM block")
	}
	switch block.Type {
	case PrivateKeyBlock:
		return block.Bytes, nil
	case EncryptedKeyBlock:
		if passphrase == "" {
			return nil, cerrors.Construction("key file: passphrase required")
		}
		return open(passphrase, block.Bytes)
	}
	return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "key file: PEM block %q", block.Type)
}

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

// sealSecret asks for the PIN a new backup is sealed with. Nothing is asked
// when the backup will be stored in plaintext.
func (a *App) sealSecret(ctx context.Context, encrypt bool) (*string, error) {
	if !encrypt || !a.cfg.Backup.EncryptionRequired {
		return nil, nil
	}
	pin, err := a.prompter.PromptPIN(ctx, "BACKUP PIN", true)
	if err != nil {
		return nil, err
	}
	return &pin, nil
}

// withPINRetry runs restore without a PIN first, so plaintext backups and a
// cached session PIN need no prompt, and asks for the PIN only when the
// envelope turns out to need one.
func (a *App) withPINRetry(ctx context.Context, restore func(secret *string) error) error {
	err := restore(nil)
	if service.ErrorKind(err) != service.KindMissingSecret {
		return err
	}

	pin, perr := a.prompter.PromptPIN(ctx, "BACKUP PIN", false)
	if perr != nil {
		return errors.Join(err, perr)
	}
	return restore(&pin)
}

package notification

import (
	"errors"

	notificationerrors "github.com/hrh2/erp/internal/notification/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrMessageNotFound
	}

	return err
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

// notifyBestEffort dispatches outside any transaction. A delivery failure is
// logged and swallowed; the triggering mutation already committed and must
// not be rolled back for it.
func notifyBestEffort(ctx context.Context, notifier ports.NotificationService, userID uint64, message string, kind domain.NotificationType) {
	if err := notifier.Send(ctx, userID, message, kind); err != nil {
		if errors.Is(err, domain.ErrDeliveryFailure) {
			zap.L().Warn("notification delivery failed",
				zap.Uint64("user_id", userID), zap.String("type", string(kind)), zap.Error(err))
			return
		}
		zap.L().Error("failed to send notification",
			zap.Uint64("user_id", userID), zap.String("type", string(kind)), zap.Error(err))
	}
}

package ledger

import (
	"context"
	"errors"
)

// HasWeeklyFreeRemaining reports whether the user may still take this week's
// free AI usage. It never creates an account or resets the counter.
func (service *Service) HasWeeklyFreeRemaining(ctx context.Context, userID UserID) (bool, error) {
	if userID.IsZero() {
		return false, ErrInvalidUserID
	}
	account, err := service.store.FindAccount(ctx, userID)
	if errors.Is(err, ErrAccountNotFound) {
		return true, nil
	}
	if err != nil {
		return false, WrapError("service", errorSubjectWeeklyFree, errorCodeStore, err)
	}
	return weeklyFreeAvailable(account, service.clock.Now().UTC()), nil
}

// ConsumeWeeklyFree takes this week's free AI usage, resetting an expired
// week first. It fails with ErrWeeklyLimitReached when already used.
func (service *Service) ConsumeWeeklyFree(ctx context.Context, userID UserID) (CreditAccount, error) {
	account, operationError := service.consumeWeeklyFree(ctx, userID)
	service.logOperation(ctx, OperationLog{
		Operation: OperationConsumeWeekly,
		UserID:    userID,
		Error:     operationError,
	})
	return account, operationError
}

func (service *Service) consumeWeeklyFree(ctx context.Context, userID UserID) (CreditAccount, error) {
	if userID.IsZero() {
		return CreditAccount{}, ErrInvalidUserID
	}
	now := service.clock.Now().UTC()
	nextReset := NextMonday(now)
	var updated CreditAccount
	operationError := service.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		account, err := txStore.GetOrCreateAccount(ctx, userID, nextReset)
		if err != nil {
			return err
		}
		if err := txStore.ResetWeeklyFreeIfDue(ctx, account.ID, now, nextReset); err != nil {
			return err
		}
		updated, err = txStore.IncrementWeeklyFree(ctx, account.ID, WeeklyFreeLimit)
		return err
	})
	if operationError != nil {
		return CreditAccount{}, WrapError("service", errorSubjectWeeklyFree, "consume", operationError)
	}
	return updated, nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/events"
	"taskboard-backend/internal/common/logger"
	"taskboard-backend/internal/domain/user"
	usermapper "taskboard-backend/internal/features/user/mapper"
	userrepo "taskboard-backend/internal/features/user/repository"
	"taskboard-backend/internal/features/wallet/models"
	"taskboard-backend/internal/platform/database"
)

// zeroBalance is reported when the chain lookup fails.
const zeroBalance = "0"

// BalanceFetcher returns the formatted native balance of an address.
type BalanceFetcher interface {
	Balance(ctx context.Context, address string) (string, error)
}

type WalletService interface {
	Connect(ctx context.Context, req models.ConnectRequest) (*models.ConnectResponse, error)
	Disconnect(ctx context.Context, req models.DisconnectRequest) (*models.DisconnectResponse, error)
}

type walletService struct {
	users     userrepo.UserRepository
	balances  BalanceFetcher
	publisher events.Publisher
	network   string
	now       func() time.Time
}

func NewWalletService(users userrepo.UserRepository, balances BalanceFetcher, publisher events.Publisher, network string) WalletService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	if network == "" {
		network = "ethereum"
	}
	return &walletService{
		users:     users,
		balances:  balances,
		publisher: publisher,
		network:   network,
		now:       time.Now,
	}
}

func (s *walletService) Connect(ctx context.Context, req models.ConnectRequest) (*models.ConnectResponse, error) {
	address := strings.TrimSpace(req.WalletAddress)
	userID := strings.TrimSpace(req.UserID)
	if address == "" || userID == "" {
		return nil, apperrors.NewValidationError("Wallet address and user ID are required")
	}
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid wallet address format").WithDetail("reason", err.Error())
	}

	// evaluated up front, reported after the ownership check
	var signatureErr error
	if req.Signature != "" && req.Message != "" {
		signatureErr = verifySignature(address, req.Message, req.Signature)
	}

	var updated *user.User
	err = s.users.Transaction(ctx, func(tx userrepo.UserRepository) error {
		owner, err := tx.FindByWalletAddress(ctx, address)
		switch {
		case err == nil && owner.ID != userID:
			return apperrors.NewConflictError("Wallet", "Wallet address is already connected to another user")
		case err != nil && !errors.Is(err, userrepo.ErrUserNotFound):
			return err
		}
		if signatureErr != nil {
			return signatureErr
		}

		if _, err := tx.GetByID(ctx, userID); err != nil {
			return err
		}
		if err := tx.Update(ctx, userID, map[string]interface{}{userrepo.FieldWalletAddress: address}); err != nil {
			return err
		}
		updated, err = tx.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err, userID)
	}

	balance := zeroBalance
	if s.balances != nil {
		b, err := s.balances.Balance(ctx, address)
		if err != nil {
			logger.Warn().Err(err).Str("wallet_address", address).Msg("Failed to fetch wallet balance")
		} else {
			balance = b
		}
	}

	resp := &models.ConnectResponse{
		Connection: &models.Connection{
			WalletAddress: address,
			UserID:        userID,
			ConnectedAt:   s.now().UTC(),
			Network:       s.network,
			Balance:       balance,
		},
		User:    usermapper.ToUserResponse(updated),
		Success: true,
		Message: "Wallet connected successfully",
	}
	s.publish(ctx, events.WalletConnected, resp.Connection)
	return resp, nil
}

func (s *walletService) Disconnect(ctx context.Context, req models.DisconnectRequest) (*models.DisconnectResponse, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, apperrors.NewValidationError("User ID is required")
	}

	var updated *user.User
	err := s.users.Transaction(ctx, func(tx userrepo.UserRepository) error {
		if _, err := tx.GetByID(ctx, userID); err != nil {
			return err
		}
		if err := tx.Update(ctx, userID, map[string]interface{}{userrepo.FieldWalletAddress: nil}); err != nil {
			return err
		}
		var err error
		updated, err = tx.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err, userID)
	}

	s.publish(ctx, events.WalletDisconnected, map[string]string{"userId": userID})
	return &models.DisconnectResponse{
		User:    usermapper.ToUserResponse(updated),
		Success: true,
		Message: "Wallet disconnected successfully",
	}, nil
}

func verifySignature(address, message, signature string) error {
	signer, err := RecoverSigner(message, signature)
	if err != nil {
		return apperrors.NewValidationError("Failed to verify signature").WithDetail("reason", err.Error())
	}
	if !strings.EqualFold(signer.Hex(), address) {
		return apperrors.NewValidationError("Invalid signature")
	}
	return nil
}

func (s *walletService) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		logger.Warn().Err(err).Str("event", eventType).Msg("Failed to publish wallet event")
	}
}

func mapRepoError(err error, userID string) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, userrepo.ErrUserNotFound):
		return apperrors.NewNotFoundError("User", userID)
	case errors.Is(err, database.ErrDuplicate):
		return apperrors.NewConflictError("Wallet", "Wallet address is already connected to another user")
	}
	return err
}

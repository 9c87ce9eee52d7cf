package auth

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/fundflow/backend/internal/domain/error"
)

func TestRefreshTokenRotation(t *testing.T) {
	tokens := newFakeTokenService()
	uc := NewRefreshTokenUseCase(tokens)

	output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh-old"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}
	if !tokens.revoked["refresh-old"] {
		t.Error("expected the presented token to be revoked")
	}
}

func TestRefreshTokenReplayRejected(t *testing.T) {
	tokens := newFakeTokenService()
	uc := NewRefreshTokenUseCase(tokens)

	if _, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh-old"}); err != nil {
		t.Fatalf("first rotation failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh-old"})
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError on replay, got %v", err)
	}
	if authErr.Code != domainerror.ErrCodeInvalidToken {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidToken, authErr.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	tokens := newFakeTokenService()
	uc := NewLogoutUserUseCase(tokens)

	if _, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh-live"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tokens.revoked["refresh-live"] {
		t.Error("expected the refresh token to be revoked")
	}
}

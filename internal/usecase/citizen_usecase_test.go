package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/citizen"
	"jobboard/internal/domain/ids"
	"jobboard/internal/infrastructure/identity"
	"jobboard/internal/pkg/jwt"
)

type stubIdentity struct {
	account identity.Account
	err     error
}

func (s *stubIdentity) Verify(ctx context.Context, authCode string) (identity.Account, error) {
	return s.account, s.err
}

type stubTokens struct {
	token string
}

func (s *stubTokens) Generate(citizenID ids.CitizenID, name string) (string, error) {
	return s.token, nil
}

func (s *stubTokens) Validate(tokenString string) (jwt.Claims, error) {
	return jwt.Claims{}, errors.New("not implemented")
}

func TestLogOnCreatesCitizenOnFirstVisit(t *testing.T) {
	citizens := &stubCitizenRepo{byAccount: map[string]citizen.Citizen{}}
	provider := &stubIdentity{account: identity.Account{
		Username:    "newcomer",
		DisplayName: "New Comer",
		URL:         "https://example.social/@newcomer",
	}}
	uc := NewCitizenUsecase(newFakeDB(), citizens, provider, &stubTokens{token: "tok"})

	result, err := uc.LogOn(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if citizens.created == nil {
		t.Fatalf("first visit must create the citizen")
	}
	if citizens.created.Account != "newcomer" {
		t.Fatalf("unexpected account %q", citizens.created.Account)
	}
	if citizens.created.JoinedOn.IsZero() || citizens.created.LastSeenOn.IsZero() {
		t.Fatalf("join and last-seen stamps must be set")
	}
	if result.Token != "tok" {
		t.Fatalf("unexpected token %q", result.Token)
	}
	if result.CitizenName != "New Comer" {
		t.Fatalf("unexpected citizen name %q", result.CitizenName)
	}
}

func TestLogOnRefreshesReturningCitizen(t *testing.T) {
	id, err := ids.NewCitizenID()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	citizens := &stubCitizenRepo{byAccount: map[string]citizen.Citizen{
		"regular": {ID: id, Account: "regular", DisplayName: "Old Name"},
	}}
	provider := &stubIdentity{account: identity.Account{Username: "regular", DisplayName: "Fresh Name"}}
	uc := NewCitizenUsecase(newFakeDB(), citizens, provider, &stubTokens{token: "tok"})

	result, err := uc.LogOn(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if citizens.created != nil {
		t.Fatalf("a returning citizen must not be recreated")
	}
	if !citizens.refreshed {
		t.Fatalf("a returning citizen must be refreshed")
	}
	if result.CitizenID != id {
		t.Fatalf("unexpected citizen id %v", result.CitizenID)
	}
	if result.CitizenName != "Fresh Name" {
		t.Fatalf("display name must be refreshed before minting, got %q", result.CitizenName)
	}
}

func TestLogOnRejectsEmptyCode(t *testing.T) {
	uc := NewCitizenUsecase(newFakeDB(), &stubCitizenRepo{}, &stubIdentity{}, &stubTokens{})

	if _, err := uc.LogOn(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogOnProviderFailure(t *testing.T) {
	provider := &stubIdentity{err: errors.New("code already used")}
	uc := NewCitizenUsecase(newFakeDB(), &stubCitizenRepo{byAccount: map[string]citizen.Citizen{}}, provider, &stubTokens{})

	if _, err := uc.LogOn(context.Background(), "auth-code"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRemoveSelfOnly(t *testing.T) {
	current := mustCitizenID(t)
	other := mustCitizenID(t)
	citizens := &stubCitizenRepo{}
	db := newFakeDB()
	uc := NewCitizenUsecase(db, citizens, &stubIdentity{}, &stubTokens{})

	if err := uc.Remove(context.Background(), current, other.String()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if citizens.deleted != nil {
		t.Fatalf("nothing may be deleted on a forbidden request")
	}

	if err := uc.Remove(context.Background(), current, current.String()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if citizens.deleted == nil || *citizens.deleted != current {
		t.Fatalf("self removal must delete the citizen")
	}
	if !db.tx.committed {
		t.Fatalf("removal must commit")
	}
}

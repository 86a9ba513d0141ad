package explorer

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

const (
	// AccountNotFoundMessage is set on the fallback record when the node answers 500.
	AccountNotFoundMessage = "Account not found"
	// AccountUnavailableMessage is set on the fallback record for any other failure.
	AccountUnavailableMessage = "Unable to fetch account details"
)

type AccountStore struct {
	base
	accounts *memdb.Keyed[string, *middleware.Account]
}

func NewAccountStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *AccountStore {
	return &AccountStore{
		base:     newBase("accounts", logger, fetcher, notifier),
		accounts: memdb.NewKeyed[string, *middleware.Account](opts...),
	}
}

// GetAccountDetails fetches the account with the given address.
// On failure it returns a fallback record carrying the address, a zero balance and a
// human readable reason, together with the error.
func (s *AccountStore) GetAccountDetails(ctx context.Context, cfg Config, address string) (*middleware.Account, error) {
	var account middleware.Account
	err := s.fetch(ctx, cfg, "GetAccountDetails", middleware.AccountPath(address), nil, &account)
	if err != nil {
		return fallbackAccount(address, err), err
	}

	s.accounts.Upsert(ctx, address, &account)
	mergedRecords.WithLabelValues(s.resource).Inc()
	return &account, nil
}

// Account returns the last fetched details of address.
func (s *AccountStore) Account(ctx context.Context, address string) (*middleware.Account, error) {
	return s.accounts.Get(ctx, address)
}

func fallbackAccount(address string, err error) *middleware.Account {
	account := &middleware.Account{
		ID:      address,
		Balance: "0",
		Error:   AccountUnavailableMessage,
	}

	var statusErr *middleware.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusInternalServerError {
		account.Error = AccountNotFoundMessage
	}
	return account
}

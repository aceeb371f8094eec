//go:build integration

package pgsql

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// Run with: PGSQL_TEST_URL=postgres://... go test -tags integration ./internal/repositories/database/pgsql/
const testURLEnv = "PGSQL_TEST_URL"

type PgxStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	pool   *pgxpool.Pool
	store  *PgxStore
	locker *AdvisoryLocker
}

func (suite *PgxStoreTestSuite) SetupSuite() {
	url := os.Getenv(testURLEnv)
	if url == "" {
		suite.T().Skipf("%s not set", testURLEnv)
	}
	suite.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", logger))

	pool, err := database.NewPgxPool(suite.ctx, url, true)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.store = NewPgxStore(pool)
	suite.locker = NewAdvisoryLocker(pool)
}

func (suite *PgxStoreTestSuite) TearDownSuite() {
	if suite.store != nil {
		suite.Require().NoError(suite.store.Close())
	}
}

func (suite *PgxStoreTestSuite) SetupTest() {
	_, err := suite.pool.Exec(suite.ctx, `TRUNCATE kv_entries; TRUNCATE exchange_log RESTART IDENTITY;`)
	suite.Require().NoError(err)
}

func (suite *PgxStoreTestSuite) TestGetSet() {
	_, err := suite.store.Get(suite.ctx, "accounts:1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.store.Set(suite.ctx, "accounts:1", []byte(`{"id":"1"}`)))
	suite.Require().NoError(suite.store.Set(suite.ctx, "accounts:1", []byte(`{"id":"1","balance":"5"}`)))

	value, err := suite.store.Get(suite.ctx, "accounts:1")
	suite.Require().NoError(err)
	suite.JSONEq(`{"id":"1","balance":"5"}`, string(value))
}

func (suite *PgxStoreTestSuite) TestSetMany_CommitsAll() {
	err := suite.store.SetMany(suite.ctx, []portsrepo.KeyValue{
		{Key: "rates:USD:EUR", Value: []byte(`{"rate":"0.9"}`)},
		{Key: "rates:EUR:USD", Value: []byte(`{"rate":"1.11111"}`)},
	})
	suite.Require().NoError(err)

	entries, err := suite.store.ScanPrefix(suite.ctx, "rates:")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("rates:EUR:USD", entries[0].Key)
	suite.Equal("rates:USD:EUR", entries[1].Key)
}

func (suite *PgxStoreTestSuite) TestSetMany_RollsBackOnFailure() {
	suite.Require().NoError(suite.store.Set(suite.ctx, "accounts:1", []byte(`{"balance":"100"}`)))

	// The second value is not valid JSONB, so the whole batch must be rejected.
	err := suite.store.SetMany(suite.ctx, []portsrepo.KeyValue{
		{Key: "accounts:1", Value: []byte(`{"balance":"0"}`)},
		{Key: "accounts:2", Value: []byte(`not json`)},
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)

	value, err := suite.store.Get(suite.ctx, "accounts:1")
	suite.Require().NoError(err)
	suite.JSONEq(`{"balance":"100"}`, string(value))
	_, err = suite.store.Get(suite.ctx, "accounts:2")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PgxStoreTestSuite) TestLog_AppendOrder() {
	for _, entry := range []string{`{"id":"a"}`, `{"id":"b"}`, `{"id":"c"}`} {
		suite.Require().NoError(suite.store.AppendLog(suite.ctx, []byte(entry)))
	}

	page, err := suite.store.ReadLog(suite.ctx, 1, 5)
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.JSONEq(`{"id":"b"}`, string(page[0]))
	suite.JSONEq(`{"id":"c"}`, string(page[1]))
}

func (suite *PgxStoreTestSuite) TestAdvisoryLocker_MutualExclusion() {
	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys := []string{"account:1", "account:2"}
			if i%2 == 0 {
				keys = []string{"account:2", "account:1"}
			}
			unlock, err := suite.locker.Lock(suite.ctx, keys...)
			if !suite.NoError(err) {
				return
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inside.Add(-1)
			unlock()
		}(i)
	}
	wg.Wait()

	suite.Equal(int32(1), maxInside.Load())
}

func (suite *PgxStoreTestSuite) TestAdvisoryLocker_ReleasedOnUnlock() {
	unlock, err := suite.locker.Lock(suite.ctx, "account:1")
	suite.Require().NoError(err)

	ctx, cancel := context.WithTimeout(suite.ctx, 100*time.Millisecond)
	defer cancel()
	_, err = suite.locker.Lock(ctx, "account:1")
	suite.True(errors.Is(err, context.DeadlineExceeded), "expected a timeout, got %v", err)

	unlock()
	unlock() // a second call is a no-op

	again, err := suite.locker.Lock(suite.ctx, "account:1")
	suite.Require().NoError(err)
	again()
}

func TestPgxStoreTestSuite(t *testing.T) {
	suite.Run(t, new(PgxStoreTestSuite))
}

//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, company, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, company, role) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "테스트사용자", company, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRequest(t *testing.T, db DBLike, buyerID uuid.UUID, buyerCompany string, quantity int) uuid.UUID {
	t.Helper()

	var requestID uuid.UUID
	ctx := context.Background()
	err := db.QueryRow(ctx,
		`INSERT INTO quote_requests (buyer_id, buyer_company, category, maker, part_number, quantity, desired_delivery)
		 VALUES ($1, $2, 'BEARING', 'SKF', '6204-2RS', $3, '2주 이내')
		 RETURNING id`,
		buyerID, buyerCompany, quantity).Scan(&requestID)
	require.NoError(t, err)

	return requestID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

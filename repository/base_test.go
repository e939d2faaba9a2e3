/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/tomoncle/datamapper/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func pageRequest(page, size int, orders ...string) *types.PageRequest {
	return types.NewPageRequest(page, size, orders...)
}

func newTestRepository(t *testing.T) Repository[account] {
	t.Helper()

	// Per-test shared-cache memory database so connections from the pool
	// see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqlDB, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ddl := "CREATE TABLE accounts (account_id INTEGER PRIMARY KEY AUTOINCREMENT, owner TEXT, balance INTEGER);"
	if _, err := db.ExecContext(context.Background(), ddl); err != nil {
		t.Fatalf("create table: %v", err)
	}

	return New(db, accountDescriptor(t))
}

func newAccount(owner string, balance int64) *account {
	return &account{Owner: &owner, Balance: &balance}
}

func TestCreateAssignsGeneratedIdentifier(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("A", 100))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated identifier to be assigned")
	}

	fetched, err := repo.FetchByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected a record")
	}
	if fetched.ID != created.ID {
		t.Errorf("id = %d, want %d", fetched.ID, created.ID)
	}
	if fetched.Owner == nil || *fetched.Owner != "A" {
		t.Errorf("owner = %v, want A", fetched.Owner)
	}
	if fetched.Balance == nil || *fetched.Balance != 100 {
		t.Errorf("balance = %v, want 100", fetched.Balance)
	}
}

func TestCreateMissingRequiredField(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := "B"
	_, err := repo.Create(ctx, &account{Owner: &owner})
	if err == nil {
		t.Fatal("expected an error")
	}
	column, ok := IsMissingRequiredField(err)
	if !ok {
		t.Fatalf("expected MissingRequiredFieldError, got %v", err)
	}
	if column != "balance" {
		t.Errorf("column = %q, want balance", column)
	}

	// contract error is raised before any statement execution
	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if total != 0 {
		t.Errorf("row count = %d, want 0", total)
	}
}

func TestCreateBindsNullForOptionalColumn(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	balance := int64(50)
	created, err := repo.Create(ctx, &account{Balance: &balance})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	fetched, err := repo.FetchByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if fetched.Owner != nil {
		t.Errorf("owner = %v, want nil", *fetched.Owner)
	}
	if fetched.Balance == nil || *fetched.Balance != 50 {
		t.Errorf("balance = %v, want 50", fetched.Balance)
	}
}

func TestExists(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("A", 1))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	exists, err := repo.Exists(ctx, created.ID)
	if err != nil {
		t.Fatalf("exists error: %v", err)
	}
	if !exists {
		t.Error("expected record to exist")
	}

	exists, err = repo.Exists(ctx, created.ID+1000)
	if err != nil {
		t.Fatalf("exists error: %v", err)
	}
	if exists {
		t.Error("expected record to not exist")
	}
}

func TestFetchByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	record, err := repo.FetchByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if record != nil {
		t.Errorf("record = %+v, want nil", record)
	}
}

func TestUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("A", 100))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	owner := "B"
	balance := int64(250)
	created.Owner = &owner
	created.Balance = &balance
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update error: %v", err)
	}

	fetched, err := repo.FetchByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if fetched.Owner == nil || *fetched.Owner != "B" {
		t.Errorf("owner = %v, want B", fetched.Owner)
	}
	if fetched.Balance == nil || *fetched.Balance != 250 {
		t.Errorf("balance = %v, want 250", fetched.Balance)
	}
}

func TestUpdateMissingIdentifier(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Update(context.Background(), newAccount("A", 1))
	if !errors.Is(err, ErrMissingIdentifier) {
		t.Fatalf("error = %v, want ErrMissingIdentifier", err)
	}
}

func TestRemove(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("A", 1))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	removed, err := repo.Remove(ctx, created.ID)
	if err != nil {
		t.Fatalf("remove error: %v", err)
	}
	if !removed {
		t.Error("expected remove to report an affected row")
	}

	removed, err = repo.Remove(ctx, created.ID)
	if err != nil {
		t.Fatalf("remove error: %v", err)
	}
	if removed {
		t.Error("expected remove of unknown id to report false")
	}
}

func TestFetchAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if _, err := repo.Create(ctx, newAccount(fmt.Sprintf("user-%d", i), int64(i*10))); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	records, err := repo.FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch all error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i, record := range records {
		if record.ID != int64(i+1) {
			t.Errorf("records[%d].ID = %d, want %d", i, record.ID, i+1)
		}
		if record.Balance == nil || *record.Balance != int64((i+1)*10) {
			t.Errorf("records[%d].Balance = %v, want %d", i, record.Balance, (i+1)*10)
		}
	}
}

func TestFetchAllEmpty(t *testing.T) {
	repo := newTestRepository(t)

	records, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch all error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0", len(records))
	}
}

func TestCountAndFetchPage(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := repo.Create(ctx, newAccount(fmt.Sprintf("user-%d", i), int64(i))); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if total != 5 {
		t.Errorf("count = %d, want 5", total)
	}

	page, err := repo.FetchPage(ctx, pageRequest(2, 2, "account_id ASC"))
	if err != nil {
		t.Fatalf("fetch page error: %v", err)
	}
	if page.Total != 5 {
		t.Errorf("total = %d, want 5", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(page.Items))
	}
	if page.Items[0].ID != 3 || page.Items[1].ID != 4 {
		t.Errorf("page ids = %d,%d, want 3,4", page.Items[0].ID, page.Items[1].ID)
	}
}

func TestFetchPageEmptyTable(t *testing.T) {
	repo := newTestRepository(t)

	page, err := repo.FetchPage(context.Background(), pageRequest(1, 10))
	if err != nil {
		t.Fatalf("fetch page error: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Errorf("page = %+v, want empty", page)
	}
}

func TestIsValid(t *testing.T) {
	repo := newTestRepository(t)

	if !repo.IsValid(newAccount("A", 1)) {
		t.Error("expected record with required fields to be valid")
	}
	owner := "A"
	if repo.IsValid(&account{Owner: &owner}) {
		t.Error("expected record without required balance to be invalid")
	}
	// optional columns may be absent
	balance := int64(1)
	if !repo.IsValid(&account{Balance: &balance}) {
		t.Error("expected record without optional owner to be valid")
	}
}

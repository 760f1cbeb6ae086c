package repository

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm on the mysql dialector over a sqlmock connection,
// configured like database.NewDB.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

// decimalArg matches a bound decimal regardless of its text form.
type decimalArg string

func (d decimalArg) Match(v driver.Value) bool {
	var text string
	switch x := v.(type) {
	case string:
		text = x
	case []byte:
		text = string(x)
	default:
		return false
	}
	got, err := decimal.NewFromString(text)
	return err == nil && got.Equal(decimal.RequireFromString(string(d)))
}

// jsonArg matches a bound JSON document by its decoded value.
type jsonArg struct{ want interface{} }

func (j jsonArg) Match(v driver.Value) bool {
	var raw []byte
	switch x := v.(type) {
	case string:
		raw = []byte(x)
	case []byte:
		raw = x
	default:
		return false
	}
	got := reflect.New(reflect.TypeOf(j.want))
	if err := json.Unmarshal(raw, got.Interface()); err != nil {
		return false
	}
	return reflect.DeepEqual(got.Elem().Interface(), j.want)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newModelTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Member{}, &Address{}, &FamilyMember{}, &Payment{}, &Incident{}, &MemberFile{}))
	return db
}

func TestMemberBeforeCreateGeneratesIDAndHashesPassword(t *testing.T) {
	db := newModelTestDB(t)

	member := Member{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		UserName:  "john_doe",
		Password:  "Secret@123",
	}
	require.NoError(t, db.Create(&member).Error)

	assert.NotEmpty(t, member.ID)
	assert.NotEqual(t, "Secret@123", member.Password)
	assert.True(t, CheckPasswordHash("Secret@123", member.Password))
}

func TestMemberBeforeCreateKeepsProvidedID(t *testing.T) {
	db := newModelTestDB(t)

	member := Member{
		ID:       "fixed-id",
		Email:    "fixed@example.com",
		UserName: "fixed",
		Password: "Secret@123",
	}
	require.NoError(t, db.Create(&member).Error)
	assert.Equal(t, "fixed-id", member.ID)
}

func TestMemberBeforeSaveDoesNotDoubleHash(t *testing.T) {
	db := newModelTestDB(t)

	member := Member{
		Email:    "john@example.com",
		UserName: "john_doe",
		Password: "Secret@123",
	}
	require.NoError(t, db.Create(&member).Error)
	hashed := member.Password

	// 再次保存时已哈希的密码不应被重复哈希
	member.FirstName = "John"
	require.NoError(t, db.Save(&member).Error)
	assert.Equal(t, hashed, member.Password)
	assert.True(t, CheckPasswordHash("Secret@123", member.Password))
}

func TestChildIDsGeneratedOnCreate(t *testing.T) {
	db := newModelTestDB(t)

	member := Member{
		Email:    "john@example.com",
		UserName: "john_doe",
		Password: "Secret@123",
		Addresses: []Address{
			{Street: "123 Main St", City: "Seattle"},
		},
		Payments: []Payment{
			{PaymentAmount: 10, PaymentType: PaymentTypeCash, PaymentRecurringType: RecurringTypeMonthly},
		},
	}
	require.NoError(t, db.Create(&member).Error)

	require.Len(t, member.Addresses, 1)
	assert.NotEmpty(t, member.Addresses[0].ID)
	assert.Equal(t, member.ID, member.Addresses[0].MemberID)
	require.Len(t, member.Payments, 1)
	assert.NotEmpty(t, member.Payments[0].ID)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secret@123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

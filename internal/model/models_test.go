package model

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestBeforeCreate_AssignsUUID(t *testing.T) {
	user := &UserModel{}
	assert.NoError(t, user.BeforeCreate(nil))
	_, err := uuid.Parse(user.ID)
	assert.NoError(t, err)

	photo := &PhotoModel{}
	assert.NoError(t, photo.BeforeCreate(nil))
	_, err = uuid.Parse(photo.ID)
	assert.NoError(t, err)

	view := &ViewModel{}
	assert.NoError(t, view.BeforeCreate(nil))
	_, err = uuid.Parse(view.ID)
	assert.NoError(t, err)
}

func TestBeforeCreate_KeepsExplicitID(t *testing.T) {
	purchase := &PurchaseModel{ID: "fixed-id"}
	assert.NoError(t, purchase.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", purchase.ID)
}

// Users are deactivated via the is_active flag; the schema must not carry a
// gorm soft-delete column, or every users query would filter on a deleted_at
// column the migration never creates.
func TestUserModel_NoSoftDeleteColumn(t *testing.T) {
	s, err := schema.Parse(&UserModel{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)
	assert.Nil(t, s.LookUpField("deleted_at"))
	assert.NotNil(t, s.LookUpField("is_active"))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "email_verifications", EmailVerificationModel{}.TableName())
	assert.Equal(t, "categories", CategoryModel{}.TableName())
	assert.Equal(t, "photos", PhotoModel{}.TableName())
	assert.Equal(t, "purchases", PurchaseModel{}.TableName())
	assert.Equal(t, "likes", LikeModel{}.TableName())
	assert.Equal(t, "views", ViewModel{}.TableName())
}

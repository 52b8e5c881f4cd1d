package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/infrastructure/config"
	Logger "membership-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter 构造完整的路由和内存数据库
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, Logger.SetupLogger())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Member{},
		&models.Address{},
		&models.FamilyMember{},
		&models.Payment{},
		&models.Incident{},
		&models.MemberFile{},
	))

	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ClientOrigin: "*",
	}
	return SetupRouter(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	reader := bytes.NewBuffer(nil)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAccount(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/account/create", gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"username":  "john_doe",
		"password":  "Secret@123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result services.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/members", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/members", nil, "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAccount(t, r)

	// 用户名登录
	w := doJSON(t, r, http.MethodPost, "/api/account/login", gin.H{
		"username": "john_doe",
		"password": "Secret@123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result services.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "john_doe", result.Username)
	assert.NotEmpty(t, result.Token)

	// 错误密码统一返回401
	w = doJSON(t, r, http.MethodPost, "/api/account/login", gin.H{
		"username": "john_doe",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRegisterDuplicateEmailFieldError(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAccount(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/account/create", gin.H{
		"firstName": "Johnny",
		"lastName":  "Doeman",
		"email":     "john@example.com",
		"username":  "johnny",
		"password":  "Secret@123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "email")
}

func TestCurrentUser(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAccount(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/account/current", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result services.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "john_doe", result.Username)
	assert.Equal(t, "john@example.com", result.Email)
}

func TestMemberCRUDOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAccount(t, r)

	// 会员详情读取对匿名开放
	w := doJSON(t, r, http.MethodGet, "/api/members/no-such-id", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 列表需要认证
	w = doJSON(t, r, http.MethodGet, "/api/members", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var members []models.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 1) // 注册的账户本身也是会员
	memberID := members[0].ID

	// 更新标量字段和子集合
	w = doJSON(t, r, http.MethodPut, "/api/members/"+memberID, gin.H{
		"firstName": "Jonathan",
		"payments": []gin.H{
			{"paymentAmount": 25.0, "paymentDate": "2024-05-01", "paymentType": "Cash", "paymentRecurringType": "Monthly"},
		},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Jonathan", updated.FirstName)
	require.Len(t, updated.Payments, 1)
	assert.Equal(t, 25.0, updated.Payments[0].PaymentAmount)

	// 匿名读取详情
	w = doJSON(t, r, http.MethodGet, "/api/members/"+memberID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// 删除后返回404
	w = doJSON(t, r, http.MethodDelete, "/api/members/"+memberID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members/"+memberID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberFilesPublicRead(t *testing.T) {
	r, db := newTestRouter(t)

	member := models.Member{
		FirstName: "Tom",
		Email:     "tom@example.com",
		UserName:  "tom_smith",
		Password:  "Secret@123",
		MemberFiles: []models.MemberFile{
			{FileName: "avatar.jpg", FileType: "jpg", Size: 3, FileData: []byte("abc")},
		},
	}
	require.NoError(t, db.Create(&member).Error)

	w := doJSON(t, r, http.MethodGet, "/api/members/files/"+member.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var files []models.MemberFileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "YWJj", files[0].Base64FileData)

	w = doJSON(t, r, http.MethodGet, "/api/members/file/"+member.ID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// 没有文件的会员返回404
	w = doJSON(t, r, http.MethodGet, "/api/members/file/no-such-member", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

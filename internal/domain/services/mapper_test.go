package services

import (
	"testing"
	"time"

	"membership-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", date("2024-01-15")},
		{"01/02/2006", date("2006-01-02")},
		{"2024-01-15T10:30:00", date("2024-01-15").Add(10*time.Hour + 30*time.Minute)},
		{"", time.Time{}},
		{"   ", time.Time{}},
		{"0001-01-01", time.Time{}},
		{"0001-01-01T00:00:00", time.Time{}},
		{"not-a-date", time.Time{}}, // 解析失败不报错，按缺失处理
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDate(tc.in), "input %q", tc.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", FormatDate(date("2024-01-15")))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestMemberToDTO(t *testing.T) {
	m := &models.Member{
		ID:           "m1",
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		RegisterDate: "2020-01-15",
		IsActive:     true,
		UserName:     "john_doe",
		Incidents: []models.Incident{
			{ID: "inc-1", EventNumber: 1, IncidentType: models.IncidentTypeNaturalDeath, IncidentDate: date("2024-03-10")},
		},
		MemberFiles: []models.MemberFile{
			{ID: "file-1", FileName: "avatar.jpg", FileType: "jpg", Size: 3, FileData: []byte("abc")},
		},
	}

	dto := MemberToDTO(m)

	assert.Equal(t, "Member since 2020-01-15", dto.Bio)
	assert.NotNil(t, dto.IsActive)
	assert.True(t, *dto.IsActive)

	// 事件日期同时写入两个字段
	assert.Equal(t, "2024-03-10", dto.Incidents[0].PaymentDate)
	assert.Equal(t, "2024-03-10", dto.Incidents[0].IncidentDate)

	// 文件内容编码为base64
	assert.Equal(t, "YWJj", dto.MemberFiles[0].Base64FileData)
}

func TestMemberToDTOWithoutRegisterDate(t *testing.T) {
	dto := MemberToDTO(&models.Member{ID: "m1", UserName: "x"})
	assert.Empty(t, dto.Bio)
}

func TestPaymentAmountAlias(t *testing.T) {
	assert.Equal(t, 50.0, paymentAmount(models.PaymentDTO{PaymentAmount: 50}))
	assert.Equal(t, 30.0, paymentAmount(models.PaymentDTO{Amount: 30}))
	assert.Equal(t, 50.0, paymentAmount(models.PaymentDTO{PaymentAmount: 50, Amount: 30}))
	assert.Equal(t, 0.0, paymentAmount(models.PaymentDTO{}))
}

func TestIncidentDatePreference(t *testing.T) {
	assert.Equal(t, date("2024-03-01"), incidentDate(models.IncidentDTO{PaymentDate: "2024-03-01", IncidentDate: "2024-04-01"}))
	assert.Equal(t, date("2024-04-01"), incidentDate(models.IncidentDTO{PaymentDate: "", IncidentDate: "2024-04-01"}))
	assert.True(t, incidentDate(models.IncidentDTO{}).IsZero())
}

package services

import (
	"encoding/base64"
	"fmt"
	"membership-http-service/internal/domain/models"
	"strings"
	"time"
)

// 日期统一以 yyyy-MM-dd 格式传输
const dateLayout = "2006-01-02"

// 兼容前端历史上出现过的其他日期格式
var fallbackDateLayouts = []string{
	"01/02/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate 解析前端传入的日期字符串。
// 空串、"0001-01-01" 哨兵值或无法解析的输入一律返回零值时间，不报错
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "0001-01-01") {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate 将时间格式化为传输格式，零值时间返回空串
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// MemberToDTO 将会员聚合映射为传输结构，文件内容在此处编码为base64
func MemberToDTO(m *models.Member) *models.MemberDTO {
	isActive := m.IsActive
	isAdmin := m.IsAdmin

	dto := &models.MemberDTO{
		ID:           m.ID,
		FirstName:    m.FirstName,
		MiddleName:   m.MiddleName,
		LastName:     m.LastName,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		RegisterDate: m.RegisterDate,
		IsActive:     &isActive,
		IsAdmin:      &isAdmin,
		UserName:     m.UserName,
	}

	if m.RegisterDate != "" {
		dto.Bio = fmt.Sprintf("Member since %s", m.RegisterDate)
	}

	for _, a := range m.Addresses {
		dto.Addresses = append(dto.Addresses, addressToDTO(a))
	}
	for _, f := range m.FamilyMembers {
		dto.FamilyMembers = append(dto.FamilyMembers, familyMemberToDTO(f))
	}
	for _, p := range m.Payments {
		dto.Payments = append(dto.Payments, paymentToDTO(p))
	}
	for _, i := range m.Incidents {
		dto.Incidents = append(dto.Incidents, incidentToDTO(i))
	}
	for _, f := range m.MemberFiles {
		dto.MemberFiles = append(dto.MemberFiles, memberFileToDTO(f))
	}

	return dto
}

func addressToDTO(a models.Address) models.AddressDTO {
	return models.AddressDTO{
		ID:      a.ID,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		ZipCode: a.ZipCode,
	}
}

func familyMemberToDTO(f models.FamilyMember) models.FamilyMemberDTO {
	return models.FamilyMemberDTO{
		ID:                     f.ID,
		MemberFamilyFirstName:  f.MemberFamilyFirstName,
		MemberFamilyMiddleName: f.MemberFamilyMiddleName,
		MemberFamilyLastName:   f.MemberFamilyLastName,
		Relationship:           f.Relationship,
	}
}

func paymentToDTO(p models.Payment) models.PaymentDTO {
	return models.PaymentDTO{
		ID:                   p.ID,
		PaymentAmount:        p.PaymentAmount,
		PaymentDate:          FormatDate(p.PaymentDate),
		PaymentType:          p.PaymentType,
		PaymentRecurringType: p.PaymentRecurringType,
	}
}

func incidentToDTO(i models.Incident) models.IncidentDTO {
	// paymentDate与incidentDate返回相同的值，兼容两代前端
	date := FormatDate(i.IncidentDate)
	return models.IncidentDTO{
		ID:                  i.ID,
		EventNumber:         i.EventNumber,
		IncidentType:        i.IncidentType,
		IncidentDescription: i.IncidentDescription,
		PaymentDate:         date,
		IncidentDate:        date,
	}
}

func memberFileToDTO(f models.MemberFile) models.MemberFileDTO {
	return models.MemberFileDTO{
		ID:              f.ID,
		FileName:        f.FileName,
		FileType:        f.FileType,
		Size:            f.Size,
		Base64FileData:  base64.StdEncoding.EncodeToString(f.FileData),
		FileDescription: f.FileDescription,
		PaymentID:       f.PaymentID,
	}
}

// paymentAmount 提取缴费金额，amount为历史别名字段
func paymentAmount(in models.PaymentDTO) float64 {
	if in.PaymentAmount != 0 {
		return in.PaymentAmount
	}
	return in.Amount
}

// incidentDate 提取事件日期。前端一直通过paymentDate字段传递事件日期，
// 该字段无效时回退到incidentDate字段
func incidentDate(in models.IncidentDTO) time.Time {
	if t := ParseDate(in.PaymentDate); !t.IsZero() {
		return t
	}
	return ParseDate(in.IncidentDate)
}

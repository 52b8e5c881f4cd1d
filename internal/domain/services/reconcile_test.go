package services

import (
	"testing"
	"time"

	"membership-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestReconcilePaymentsDiffLaw(t *testing.T) {
	persisted := []models.Payment{
		{ID: "pay-a", PaymentAmount: 100, PaymentDate: date("2023-05-01"), PaymentType: models.PaymentTypeCash, PaymentRecurringType: models.RecurringTypeAnnual, MemberID: "m1"},
		{ID: "pay-b", PaymentAmount: 20, PaymentDate: date("2023-06-01"), PaymentType: models.PaymentTypeCash, PaymentRecurringType: models.RecurringTypeMonthly, MemberID: "m1"},
	}
	desired := []models.PaymentDTO{
		{ID: "pay-b", PaymentAmount: 25, PaymentDate: "2023-07-01", PaymentType: "Cash", PaymentRecurringType: "Monthly"},
		{PaymentAmount: 60, PaymentDate: "2024-01-01", PaymentType: "Check", PaymentRecurringType: "Annual"},
	}

	d := reconcilePayments(persisted, desired, "m1")

	require.Len(t, d.Inserts, 1)
	require.Len(t, d.Updates, 1)
	require.Len(t, d.DeleteIDs, 1)

	assert.Equal(t, "pay-a", d.DeleteIDs[0])
	assert.Equal(t, "pay-b", d.Updates[0].ID)
	assert.Equal(t, 25.0, d.Updates[0].PaymentAmount)
	assert.Equal(t, date("2023-07-01"), d.Updates[0].PaymentDate)
	assert.Empty(t, d.Inserts[0].ID) // ID由创建钩子生成
	assert.Equal(t, models.PaymentTypeCheck, d.Inserts[0].PaymentType)
	assert.Equal(t, "m1", d.Inserts[0].MemberID)
}

func TestReconcilePaymentsFieldFallback(t *testing.T) {
	persisted := []models.Payment{
		{ID: "pay-1", PaymentAmount: 50.00, PaymentDate: date("2024-01-15"), PaymentType: models.PaymentTypeCash, PaymentRecurringType: models.RecurringTypeMonthly, MemberID: "m1"},
	}
	// 金额为0且日期为空的更新不应清掉库中已有的值
	desired := []models.PaymentDTO{
		{ID: "pay-1", PaymentAmount: 0, PaymentDate: "", PaymentType: "Cash", PaymentRecurringType: "Monthly"},
	}

	d := reconcilePayments(persisted, desired, "m1")

	require.Len(t, d.Updates, 1)
	assert.Equal(t, 50.00, d.Updates[0].PaymentAmount)
	assert.Equal(t, date("2024-01-15"), d.Updates[0].PaymentDate)
	assert.Empty(t, d.Inserts)
	assert.Empty(t, d.DeleteIDs)
}

func TestReconcilePaymentsSentinelDateTreatedAsMissing(t *testing.T) {
	persisted := []models.Payment{
		{ID: "pay-1", PaymentAmount: 10, PaymentDate: date("2024-01-15"), MemberID: "m1"},
	}
	desired := []models.PaymentDTO{
		{ID: "pay-1", PaymentAmount: 10, PaymentDate: "0001-01-01", PaymentType: "Cash", PaymentRecurringType: "Monthly"},
	}

	d := reconcilePayments(persisted, desired, "m1")

	require.Len(t, d.Updates, 1)
	assert.Equal(t, date("2024-01-15"), d.Updates[0].PaymentDate)
}

func TestReconcilePaymentsNewRecordKeepsMissingValues(t *testing.T) {
	// 新增记录的缺失日期和零金额保持缺失，不得默认为当天
	desired := []models.PaymentDTO{
		{PaymentAmount: 0, PaymentDate: "", PaymentType: "Cash", PaymentRecurringType: "Monthly"},
	}

	d := reconcilePayments(nil, desired, "m1")

	require.Len(t, d.Inserts, 1)
	assert.True(t, d.Inserts[0].PaymentDate.IsZero())
	assert.Equal(t, 0.0, d.Inserts[0].PaymentAmount)
}

func TestReconcilePaymentsAmountAlias(t *testing.T) {
	desired := []models.PaymentDTO{
		{Amount: 75, PaymentDate: "2024-02-01", PaymentType: "Cash", PaymentRecurringType: "Monthly"},
	}

	d := reconcilePayments(nil, desired, "m1")

	require.Len(t, d.Inserts, 1)
	assert.Equal(t, 75.0, d.Inserts[0].PaymentAmount)
}

func TestReconcilePaymentsUnknownIDIsInsert(t *testing.T) {
	desired := []models.PaymentDTO{
		{ID: "never-seen", PaymentAmount: 5, PaymentDate: "2024-02-01", PaymentType: "Cash", PaymentRecurringType: "Monthly"},
	}

	d := reconcilePayments(nil, desired, "m1")

	require.Len(t, d.Inserts, 1)
	assert.Equal(t, "never-seen", d.Inserts[0].ID)
	assert.Empty(t, d.Updates)
}

func TestReconcileIncidentsDatePreference(t *testing.T) {
	// 前端通过paymentDate字段传递事件日期，优先于incidentDate字段
	desired := []models.IncidentDTO{
		{EventNumber: 1, IncidentType: "AccidentalDeath", IncidentDescription: "x", PaymentDate: "2024-03-01", IncidentDate: "2024-04-01"},
	}

	d := reconcileIncidents(nil, desired, "m1")

	require.Len(t, d.Inserts, 1)
	assert.Equal(t, date("2024-03-01"), d.Inserts[0].IncidentDate)
}

func TestReconcileIncidentsFallbackToIncidentDateField(t *testing.T) {
	desired := []models.IncidentDTO{
		{EventNumber: 1, IncidentType: "NaturalDeath", PaymentDate: "0001-01-01", IncidentDate: "2024-04-01"},
	}

	d := reconcileIncidents(nil, desired, "m1")

	require.Len(t, d.Inserts, 1)
	assert.Equal(t, date("2024-04-01"), d.Inserts[0].IncidentDate)
}

func TestReconcileIncidentsMissingDatePreserved(t *testing.T) {
	persisted := []models.Incident{
		{ID: "inc-1", EventNumber: 1, IncidentType: models.IncidentTypeNaturalDeath, IncidentDate: date("2024-03-10"), MemberID: "m1"},
	}
	desired := []models.IncidentDTO{
		{ID: "inc-1", EventNumber: 2, IncidentType: "NaturalDeath", PaymentDate: "", IncidentDate: ""},
	}

	d := reconcileIncidents(persisted, desired, "m1")

	require.Len(t, d.Updates, 1)
	assert.Equal(t, date("2024-03-10"), d.Updates[0].IncidentDate)
	assert.Equal(t, 2, d.Updates[0].EventNumber)
}

func TestReconcileMemberIDBackfill(t *testing.T) {
	persisted := []models.Address{
		{ID: "addr-1", Street: "Old St", MemberID: ""}, // 历史数据缺失了归属
	}
	desired := []models.AddressDTO{
		{ID: "addr-1", Street: "New St"},
	}

	d := reconcileAddresses(persisted, desired, "m1")

	require.Len(t, d.Updates, 1)
	assert.Equal(t, "m1", d.Updates[0].MemberID)
	assert.Equal(t, "New St", d.Updates[0].Street)
}

func TestReconcileEmptyDesiredDeletesAll(t *testing.T) {
	persisted := []models.FamilyMember{
		{ID: "fam-1", MemberID: "m1"},
		{ID: "fam-2", MemberID: "m1"},
	}

	d := reconcileFamilyMembers(persisted, []models.FamilyMemberDTO{}, "m1")

	assert.Empty(t, d.Inserts)
	assert.Empty(t, d.Updates)
	assert.ElementsMatch(t, []string{"fam-1", "fam-2"}, d.DeleteIDs)
}

func TestReconcileMemberFilesKeepsDataWithoutNewContent(t *testing.T) {
	persisted := []models.MemberFile{
		{ID: "file-1", FileName: "old.pdf", FileData: []byte("original"), Size: 8, MemberID: "m1"},
	}
	desired := []models.MemberFileDTO{
		{ID: "file-1", FileName: "renamed.pdf", Base64FileData: ""},
	}

	d := reconcileMemberFiles(persisted, desired, "m1")

	require.Len(t, d.Updates, 1)
	assert.Equal(t, "renamed.pdf", d.Updates[0].FileName)
	assert.Equal(t, []byte("original"), d.Updates[0].FileData)
}

func TestDiffEmpty(t *testing.T) {
	var d Diff[models.Address]
	assert.True(t, d.Empty())

	d.DeleteIDs = append(d.DeleteIDs, "x")
	assert.False(t, d.Empty())
}

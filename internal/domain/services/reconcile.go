package services

import (
	"encoding/base64"
	"membership-http-service/internal/domain/models"

	"gorm.io/gorm"
)

// Diff 描述一个子集合从持久化状态到目标状态所需的全部变更。
// 身份以记录ID为准：目标集合中ID为空或库中不存在的记录为新增，
// 库中存在但目标集合中缺失的记录为删除，其余为更新
type Diff[E any] struct {
	Inserts   []E
	Updates   []E
	DeleteIDs []string
}

// Empty 判断该差异是否不包含任何变更
func (d Diff[E]) Empty() bool {
	return len(d.Inserts) == 0 && len(d.Updates) == 0 && len(d.DeleteIDs) == 0
}

// applyDiff 在事务中应用一个子集合的差异
func applyDiff[E any](tx *gorm.DB, d Diff[E]) error {
	if len(d.DeleteIDs) > 0 {
		var model E
		if err := tx.Where("id IN ?", d.DeleteIDs).Delete(&model).Error; err != nil {
			return err
		}
	}
	for i := range d.Inserts {
		if err := tx.Create(&d.Inserts[i]).Error; err != nil {
			return err
		}
	}
	for i := range d.Updates {
		if err := tx.Save(&d.Updates[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// reconcileAddresses 计算地址集合的差异
func reconcileAddresses(persisted []models.Address, desired []models.AddressDTO, memberID string) Diff[models.Address] {
	existing := make(map[string]models.Address, len(persisted))
	for _, p := range persisted {
		existing[p.ID] = p
	}

	var d Diff[models.Address]
	seen := make(map[string]bool, len(desired))

	for _, in := range desired {
		if prev, ok := existing[in.ID]; ok && in.ID != "" {
			seen[in.ID] = true
			upd := prev
			upd.Street = in.Street
			upd.City = in.City
			upd.State = in.State
			upd.Country = in.Country
			upd.ZipCode = in.ZipCode
			if upd.MemberID == "" {
				upd.MemberID = memberID
			}
			d.Updates = append(d.Updates, upd)
		} else {
			d.Inserts = append(d.Inserts, models.Address{
				ID:       in.ID,
				Street:   in.Street,
				City:     in.City,
				State:    in.State,
				Country:  in.Country,
				ZipCode:  in.ZipCode,
				MemberID: memberID,
			})
		}
	}

	for _, p := range persisted {
		if !seen[p.ID] {
			d.DeleteIDs = append(d.DeleteIDs, p.ID)
		}
	}
	return d
}

// reconcileFamilyMembers 计算家庭成员集合的差异
func reconcileFamilyMembers(persisted []models.FamilyMember, desired []models.FamilyMemberDTO, memberID string) Diff[models.FamilyMember] {
	existing := make(map[string]models.FamilyMember, len(persisted))
	for _, p := range persisted {
		existing[p.ID] = p
	}

	var d Diff[models.FamilyMember]
	seen := make(map[string]bool, len(desired))

	for _, in := range desired {
		if prev, ok := existing[in.ID]; ok && in.ID != "" {
			seen[in.ID] = true
			upd := prev
			upd.MemberFamilyFirstName = in.MemberFamilyFirstName
			upd.MemberFamilyMiddleName = in.MemberFamilyMiddleName
			upd.MemberFamilyLastName = in.MemberFamilyLastName
			upd.Relationship = in.Relationship
			if upd.MemberID == "" {
				upd.MemberID = memberID
			}
			d.Updates = append(d.Updates, upd)
		} else {
			d.Inserts = append(d.Inserts, models.FamilyMember{
				ID:                     in.ID,
				MemberFamilyFirstName:  in.MemberFamilyFirstName,
				MemberFamilyMiddleName: in.MemberFamilyMiddleName,
				MemberFamilyLastName:   in.MemberFamilyLastName,
				Relationship:           in.Relationship,
				MemberID:               memberID,
			})
		}
	}

	for _, p := range persisted {
		if !seen[p.ID] {
			d.DeleteIDs = append(d.DeleteIDs, p.ID)
		}
	}
	return d
}

// reconcilePayments 计算缴费记录集合的差异。
// 更新已有记录时，缺失的日期和为0的金额保留库中已有的值；
// 新增记录保持缺失状态，绝不默认为当天日期
func reconcilePayments(persisted []models.Payment, desired []models.PaymentDTO, memberID string) Diff[models.Payment] {
	existing := make(map[string]models.Payment, len(persisted))
	for _, p := range persisted {
		existing[p.ID] = p
	}

	var d Diff[models.Payment]
	seen := make(map[string]bool, len(desired))

	for _, in := range desired {
		amount := paymentAmount(in)
		date := ParseDate(in.PaymentDate)

		if prev, ok := existing[in.ID]; ok && in.ID != "" {
			seen[in.ID] = true
			upd := prev
			upd.PaymentType = models.ParsePaymentType(in.PaymentType)
			upd.PaymentRecurringType = models.ParseRecurringType(in.PaymentRecurringType)
			if !date.IsZero() {
				upd.PaymentDate = date
			}
			if amount != 0 || prev.PaymentAmount <= 0 {
				upd.PaymentAmount = amount
			}
			if upd.MemberID == "" {
				upd.MemberID = memberID
			}
			d.Updates = append(d.Updates, upd)
		} else {
			d.Inserts = append(d.Inserts, models.Payment{
				ID:                   in.ID,
				PaymentAmount:        amount,
				PaymentDate:          date,
				PaymentType:          models.ParsePaymentType(in.PaymentType),
				PaymentRecurringType: models.ParseRecurringType(in.PaymentRecurringType),
				MemberID:             memberID,
			})
		}
	}

	for _, p := range persisted {
		if !seen[p.ID] {
			d.DeleteIDs = append(d.DeleteIDs, p.ID)
		}
	}
	return d
}

// reconcileIncidents 计算事件集合的差异，日期回退规则与缴费记录一致
func reconcileIncidents(persisted []models.Incident, desired []models.IncidentDTO, memberID string) Diff[models.Incident] {
	existing := make(map[string]models.Incident, len(persisted))
	for _, p := range persisted {
		existing[p.ID] = p
	}

	var d Diff[models.Incident]
	seen := make(map[string]bool, len(desired))

	for _, in := range desired {
		date := incidentDate(in)

		if prev, ok := existing[in.ID]; ok && in.ID != "" {
			seen[in.ID] = true
			upd := prev
			upd.EventNumber = in.EventNumber
			upd.IncidentType = models.ParseIncidentType(in.IncidentType)
			upd.IncidentDescription = in.IncidentDescription
			if !date.IsZero() {
				upd.IncidentDate = date
			}
			if upd.MemberID == "" {
				upd.MemberID = memberID
			}
			d.Updates = append(d.Updates, upd)
		} else {
			d.Inserts = append(d.Inserts, models.Incident{
				ID:                  in.ID,
				EventNumber:         in.EventNumber,
				IncidentType:        models.ParseIncidentType(in.IncidentType),
				IncidentDescription: in.IncidentDescription,
				IncidentDate:        date,
				MemberID:            memberID,
			})
		}
	}

	for _, p := range persisted {
		if !seen[p.ID] {
			d.DeleteIDs = append(d.DeleteIDs, p.ID)
		}
	}
	return d
}

// reconcileMemberFiles 计算文件集合的差异。
// 更新已有记录时只在传入了新的base64内容时替换文件字节，否则保留原内容
func reconcileMemberFiles(persisted []models.MemberFile, desired []models.MemberFileDTO, memberID string) Diff[models.MemberFile] {
	existing := make(map[string]models.MemberFile, len(persisted))
	for _, p := range persisted {
		existing[p.ID] = p
	}

	var d Diff[models.MemberFile]
	seen := make(map[string]bool, len(desired))

	for _, in := range desired {
		data, decodeErr := base64.StdEncoding.DecodeString(in.Base64FileData)

		if prev, ok := existing[in.ID]; ok && in.ID != "" {
			seen[in.ID] = true
			upd := prev
			upd.FileName = in.FileName
			upd.FileType = in.FileType
			upd.FileDescription = in.FileDescription
			upd.PaymentID = in.PaymentID
			if decodeErr == nil && len(data) > 0 {
				upd.FileData = data
				upd.Size = int64(len(data))
			}
			if upd.MemberID == "" {
				upd.MemberID = memberID
			}
			d.Updates = append(d.Updates, upd)
		} else {
			if decodeErr != nil {
				data = nil
			}
			d.Inserts = append(d.Inserts, models.MemberFile{
				ID:              in.ID,
				FileName:        in.FileName,
				FileType:        in.FileType,
				Size:            int64(len(data)),
				FileData:        data,
				FileDescription: in.FileDescription,
				PaymentID:       in.PaymentID,
				MemberID:        memberID,
			})
		}
	}

	for _, p := range persisted {
		if !seen[p.ID] {
			d.DeleteIDs = append(d.DeleteIDs, p.ID)
		}
	}
	return d
}

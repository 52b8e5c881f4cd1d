package models

// 传输层DTO，字段名与前端约定保持一致。
// 日期一律以字符串传输，文件内容以base64字符串传输。

// MemberDTO 会员聚合的传输结构
type MemberDTO struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	PhoneNumber  string `json:"phoneNumber"`
	RegisterDate string `json:"registerDate"`
	IsActive     *bool  `json:"isActive,omitempty"`
	IsAdmin      *bool  `json:"isAdmin,omitempty"`
	UserName     string `json:"userName,omitempty"`
	Password     string `json:"password,omitempty"`

	// 子集合为nil时表示本次请求未携带该集合，不做任何变更；
	// 为空数组时表示删除该集合的全部记录
	Addresses     []AddressDTO      `json:"addresses,omitempty"`
	FamilyMembers []FamilyMemberDTO `json:"familyMembers,omitempty"`
	Payments      []PaymentDTO      `json:"payments,omitempty"`
	Incidents     []IncidentDTO     `json:"incidents,omitempty"`
	MemberFiles   []MemberFileDTO   `json:"memberFiles,omitempty"`
}

// AddressDTO 地址传输结构
type AddressDTO struct {
	ID      string `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// FamilyMemberDTO 家庭成员传输结构
type FamilyMemberDTO struct {
	ID                     string `json:"id"`
	MemberFamilyFirstName  string `json:"memberFamilyFirstName"`
	MemberFamilyMiddleName string `json:"memberFamilyMiddleName"`
	MemberFamilyLastName   string `json:"memberFamilyLastName"`
	Relationship           string `json:"relationship"`
}

// PaymentDTO 缴费记录传输结构，amount为paymentAmount的历史别名
type PaymentDTO struct {
	ID                   string  `json:"id"`
	PaymentAmount        float64 `json:"paymentAmount"`
	Amount               float64 `json:"amount,omitempty"`
	PaymentDate          string  `json:"paymentDate"`
	PaymentType          string  `json:"paymentType"`
	PaymentRecurringType string  `json:"paymentRecurringType"`
}

// IncidentDTO 事件传输结构。
// 前端历史上通过paymentDate字段传递事件日期，incidentDate作为兼容字段保留，
// 读取时两个字段返回相同的值
type IncidentDTO struct {
	ID                  string `json:"id"`
	EventNumber         int    `json:"eventNumber"`
	IncidentType        string `json:"incidentType"`
	IncidentDescription string `json:"incidentDescription"`
	PaymentDate         string `json:"paymentDate"`
	IncidentDate        string `json:"incidentDate"`
}

// MemberFileDTO 文件传输结构
type MemberFileDTO struct {
	ID              string  `json:"id"`
	FileName        string  `json:"fileName"`
	FileType        string  `json:"fileType"`
	Size            int64   `json:"size"`
	Base64FileData  string  `json:"base64FileData"`
	FileDescription *string `json:"fileDescription,omitempty"`
	PaymentID       *string `json:"paymentId,omitempty"`
}

package domain

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
)

type Category string

const (
	CategoryHospital Category = "HOSPITAL"
	CategorySchool   Category = "SCHOOL"
	CategoryWater    Category = "WATER"
	CategoryEnergy   Category = "ENERGY"
	CategoryOther    Category = "OTHER"
)

type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

type ProjectStatus string

const (
	ProjectStatusOpen         ProjectStatus = "OPEN"
	ProjectStatusInDiscussion ProjectStatus = "IN_DISCUSSION"
	ProjectStatusMatched      ProjectStatus = "MATCHED"
	ProjectStatusFulfilled    ProjectStatus = "FULFILLED"
)

type PaymentMethod string

const (
	PaymentMethodWire  PaymentMethod = "WIRE"
	PaymentMethodDAF   PaymentMethod = "DAF"
	PaymentMethodCheck PaymentMethod = "CHECK"
	PaymentMethodACH   PaymentMethod = "ACH"
	PaymentMethodOther PaymentMethod = "OTHER"
)

type DonationStatus string

const (
	DonationStatusPendingConfirmation DonationStatus = "PENDING_CONFIRMATION"
	DonationStatusReceived            DonationStatus = "RECEIVED"
	DonationStatusForwarded           DonationStatus = "FORWARDED"
	DonationStatusCompleted           DonationStatus = "COMPLETED"
	DonationStatusFailed              DonationStatus = "FAILED"
	DonationStatusRefunded            DonationStatus = "REFUNDED"
)

type WireTransferStatus string

const (
	WireTransferStatusPending   WireTransferStatus = "PENDING"
	WireTransferStatusInitiated WireTransferStatus = "INITIATED"
	WireTransferStatusSent      WireTransferStatus = "SENT"
	WireTransferStatusInTransit WireTransferStatus = "IN_TRANSIT"
	WireTransferStatusConfirmed WireTransferStatus = "CONFIRMED"
	WireTransferStatusFailed    WireTransferStatus = "FAILED"
	WireTransferStatusCancelled WireTransferStatus = "CANCELLED"
)

type UserRole string

const (
	RoleAdmin            UserRole = "ADMIN"
	RolePartner          UserRole = "PARTNER"
	RoleNonprofitManager UserRole = "NONPROFIT_MANAGER"
	RoleDonor            UserRole = "DONOR"
)

// ProjectSubmission is a municipality's unreviewed proposal. Terminal
// fields (rejectionReason, approvedProjectId, reviewedAt, reviewedBy)
// are set exactly once by the review workflow.
type ProjectSubmission struct {
	ID                   string           `json:"id" gorm:"primaryKey"`
	MunicipalityName     string           `json:"municipalityName"`
	MunicipalityEmail    string           `json:"municipalityEmail"`
	Region               *string          `json:"region"`
	FacilityName         string           `json:"facilityName"`
	Category             Category         `json:"category"`
	ProjectType          string           `json:"projectType"`
	ProjectSubtype       *string          `json:"projectSubtype"`
	BriefDescription     string           `json:"briefDescription"`
	FullDescription      string           `json:"fullDescription"`
	Urgency              Urgency          `json:"urgency"`
	EstimatedCostUsd     *float64         `json:"estimatedCostUsd"`
	TechnicalPowerKw     *float64         `json:"technicalPowerKw"`
	NumberOfPanels       *int             `json:"numberOfPanels"`
	CofinancingAvailable *string          `json:"cofinancingAvailable"`
	CofinancingDetails   *string          `json:"cofinancingDetails"`
	CityName             string           `json:"cityName"`
	Address              *string          `json:"address"`
	CityLatitude         float64          `json:"cityLatitude"`
	CityLongitude        float64          `json:"cityLongitude"`
	ContactName          string           `json:"contactName"`
	ContactEmail         string           `json:"contactEmail"`
	ContactPhone         *string          `json:"contactPhone"`
	PartnerOrganization  *string          `json:"partnerOrganization"`
	AdditionalNotes      *string          `json:"additionalNotes"`
	Status               SubmissionStatus `json:"status"`
	RejectionReason      *string          `json:"rejectionReason"`
	ApprovedProjectID    *string          `json:"approvedProjectId"`
	ReviewedAt           *time.Time       `json:"reviewedAt"`
	ReviewedBy           *string          `json:"reviewedBy"`
	SubmittedByUserID    *string          `json:"submittedByUserId" gorm:"index"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

// Project is a published, donor-visible funding need derived 1:1 from
// an approved submission. Its status lifecycle is independent of the
// submission's.
type Project struct {
	ID                   string        `json:"id" gorm:"primaryKey"`
	MunicipalityName     string        `json:"municipalityName"`
	FacilityName         string        `json:"facilityName"`
	Category             Category      `json:"category"`
	ProjectType          string        `json:"projectType"`
	ProjectSubtype       *string       `json:"projectSubtype"`
	BriefDescription     string        `json:"briefDescription"`
	FullDescription      string        `json:"fullDescription"`
	CityName             string        `json:"cityName"`
	Address              *string       `json:"address"`
	CityLatitude         float64       `json:"cityLatitude"`
	CityLongitude        float64       `json:"cityLongitude"`
	ContactName          string        `json:"contactName"`
	ContactEmail         string        `json:"contactEmail"`
	ContactPhone         *string       `json:"contactPhone"`
	Urgency              Urgency       `json:"urgency"`
	Status               ProjectStatus `json:"status"`
	EstimatedCostUsd     *float64      `json:"estimatedCostUsd"`
	TechnicalPowerKw     *float64      `json:"technicalPowerKw"`
	NumberOfPanels       *int          `json:"numberOfPanels"`
	CofinancingAvailable *string       `json:"cofinancingAvailable"`
	CofinancingDetails   *string       `json:"cofinancingDetails"`
	PartnerOrganization  *string       `json:"partnerOrganization"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// DonationRecord tracks a donor's self-reported contribution from
// confirmation through forwarding to a terminal state.
type DonationRecord struct {
	ID                string         `json:"id" gorm:"primaryKey"`
	ProjectID         *string        `json:"projectId" gorm:"index"`
	ProjectName       string         `json:"projectName"`
	DonorUserID       string         `json:"donorUserId" gorm:"index"`
	DonorName         string         `json:"donorName"`
	DonorEmail        string         `json:"donorEmail"`
	DonorOrganization *string        `json:"donorOrganization"`
	Amount            *float64       `json:"amount"`
	PaymentMethod     PaymentMethod  `json:"paymentMethod"`
	ReferenceNumber   *string        `json:"referenceNumber"`
	Status            DonationStatus `json:"status"`
	DonorMessage      *string        `json:"donorMessage"`
	InternalNotes     *string        `json:"internalNotes"`
	SubmittedAt       time.Time      `json:"submittedAt"`
	ReceivedAt        *time.Time     `json:"receivedAt"`
	ForwardedAt       *time.Time     `json:"forwardedAt"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// WireTransferRecord tracks an outbound transfer to a Ukrainian
// recipient, linked loosely to donations by project.
type WireTransferRecord struct {
	ID              string             `json:"id" gorm:"primaryKey"`
	ReferenceNumber string             `json:"referenceNumber"`
	RecipientName   string             `json:"recipientName"`
	ProjectID       *string            `json:"projectId" gorm:"index"`
	ProjectName     string             `json:"projectName"`
	AmountUsd       float64            `json:"amount"`
	Status          WireTransferStatus `json:"status"`
	InitiatedAt     *time.Time         `json:"initiatedAt"`
	SentAt          *time.Time         `json:"sentAt"`
	ConfirmedAt     *time.Time         `json:"confirmedAt"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Organization *string    `json:"organization"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ContactSubmission is a donor inquiry tied to a project. Admins toggle
// handled once the inquiry has been answered.
type ContactSubmission struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	ProjectID    string    `json:"projectId" gorm:"index"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization *string   `json:"organization"`
	Message      string    `json:"message"`
	Handled      bool      `json:"handled"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Subscriber struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex"`
	Subscribed     bool       `json:"subscribed"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}

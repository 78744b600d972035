package views

// CustomerRequest is the JSON body of POST /predict/churn. Fields are pointers so a
// missing field can be told apart from a zero value.
type CustomerRequest struct {
	Gender           *string  `json:"gender" binding:"required" example:"Male"`
	SeniorCitizen    *int     `json:"SeniorCitizen" binding:"required,oneof=0 1" example:"0"`
	Partner          *string  `json:"Partner" binding:"required" example:"Yes"`
	Dependents       *string  `json:"Dependents" binding:"required" example:"No"`
	Tenure           *int     `json:"tenure" binding:"required" example:"12"`
	PhoneService     *string  `json:"PhoneService" binding:"required" example:"Yes"`
	MultipleLines    *string  `json:"MultipleLines" binding:"required" example:"No"`
	InternetService  *string  `json:"InternetService" binding:"required" example:"DSL"`
	OnlineSecurity   *string  `json:"OnlineSecurity" binding:"required" example:"No"`
	OnlineBackup     *string  `json:"OnlineBackup" binding:"required" example:"Yes"`
	DeviceProtection *string  `json:"DeviceProtection" binding:"required" example:"No"`
	TechSupport      *string  `json:"TechSupport" binding:"required" example:"No"`
	StreamingTV      *string  `json:"StreamingTV" binding:"required" example:"No"`
	StreamingMovies  *string  `json:"StreamingMovies" binding:"required" example:"No"`
	Contract         *string  `json:"Contract" binding:"required" example:"Month-to-month"`
	PaperlessBilling *string  `json:"PaperlessBilling" binding:"required" example:"Yes"`
	PaymentMethod    *string  `json:"PaymentMethod" binding:"required" example:"Electronic check"`
	MonthlyCharges   *float64 `json:"MonthlyCharges" binding:"required" example:"29.85"`
	TotalCharges     *float64 `json:"TotalCharges" binding:"required" example:"350.5"`
}

// CustomerRecord is the validated, immutable customer profile handed to the prediction service.
type CustomerRecord struct {
	Gender           string
	SeniorCitizen    int
	Partner          string
	Dependents       string
	Tenure           int
	PhoneService     string
	MultipleLines    string
	InternetService  string
	OnlineSecurity   string
	OnlineBackup     string
	DeviceProtection string
	TechSupport      string
	StreamingTV      string
	StreamingMovies  string
	Contract         string
	PaperlessBilling string
	PaymentMethod    string
	MonthlyCharges   float64
	TotalCharges     float64
}

// ToRecord dereferences a bound request. It must only be called after binding succeeded.
func (r CustomerRequest) ToRecord() CustomerRecord {
	return CustomerRecord{
		Gender:           *r.Gender,
		SeniorCitizen:    *r.SeniorCitizen,
		Partner:          *r.Partner,
		Dependents:       *r.Dependents,
		Tenure:           *r.Tenure,
		PhoneService:     *r.PhoneService,
		MultipleLines:    *r.MultipleLines,
		InternetService:  *r.InternetService,
		OnlineSecurity:   *r.OnlineSecurity,
		OnlineBackup:     *r.OnlineBackup,
		DeviceProtection: *r.DeviceProtection,
		TechSupport:      *r.TechSupport,
		StreamingTV:      *r.StreamingTV,
		StreamingMovies:  *r.StreamingMovies,
		Contract:         *r.Contract,
		PaperlessBilling: *r.PaperlessBilling,
		PaymentMethod:    *r.PaymentMethod,
		MonthlyCharges:   *r.MonthlyCharges,
		TotalCharges:     *r.TotalCharges,
	}
}

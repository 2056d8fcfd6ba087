package mollie

// Link is a HAL link as returned by Mollie.
type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// Links is keyed by relation: self, next, previous, documentation, ...
type Links map[string]*Link

// Metadata is an open mapping attached to customers and subscriptions.
type Metadata map[string]interface{}

// Mandate methods known to Mollie. Other provider strings pass through.
const (
	MethodDirectDebit = "directdebit"
	MethodCreditCard  = "creditcard"
	MethodPayPal      = "paypal"
)

type Customer struct {
	Resource  string   `json:"resource,omitempty"`
	ID        string   `json:"id,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Locale    string   `json:"locale,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	Links     Links    `json:"_links,omitempty"`
}

// CustomerRequest is the body of create and update customer.
type CustomerRequest struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Locale   string   `json:"locale,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// MandateDetails carries the consumer or card details of a mandate.
type MandateDetails struct {
	ConsumerName    string `json:"consumerName,omitempty"`
	ConsumerAccount string `json:"consumerAccount,omitempty"`
	ConsumerBic     string `json:"consumerBic,omitempty"`
	CardHolder      string `json:"cardHolder,omitempty"`
	CardNumber      string `json:"cardNumber,omitempty"`
	CardLabel       string `json:"cardLabel,omitempty"`
	CardExpiryDate  string `json:"cardExpiryDate,omitempty"`
}

type Mandate struct {
	Resource                 string          `json:"resource,omitempty"`
	ID                       string          `json:"id,omitempty"`
	Mode                     string          `json:"mode,omitempty"`
	Status                   string          `json:"status,omitempty"`
	Method                   string          `json:"method"`
	Details                  *MandateDetails `json:"details,omitempty"`
	CustomerID               string          `json:"customerId,omitempty"`
	ConsumerName             string          `json:"consumerName,omitempty"`
	ConsumerAccount          string          `json:"consumerAccount,omitempty"`
	ConsumerBic              string          `json:"consumerBic,omitempty"`
	SignatureDate            string          `json:"signatureDate,omitempty"`
	MandateReference         string          `json:"mandateReference,omitempty"`
	PaypalBillingAgreementID string          `json:"paypalBillingAgreementId,omitempty"`
	CreatedAt                string          `json:"createdAt,omitempty"`
	Links                    Links           `json:"_links,omitempty"`
}

// MandateRequest is the body of create mandate.
type MandateRequest struct {
	Method                   string `json:"method"`
	ConsumerName             string `json:"consumerName,omitempty"`
	ConsumerAccount          string `json:"consumerAccount,omitempty"`
	ConsumerBic              string `json:"consumerBic,omitempty"`
	ConsumerEmail            string `json:"consumerEmail,omitempty"`
	SignatureDate            string `json:"signatureDate,omitempty"`
	MandateReference         string `json:"mandateReference,omitempty"`
	PaypalBillingAgreementID string `json:"paypalBillingAgreementId,omitempty"`
}

type Subscription struct {
	Resource        string   `json:"resource,omitempty"`
	ID              string   `json:"id,omitempty"`
	Mode            string   `json:"mode,omitempty"`
	Status          string   `json:"status,omitempty"`
	CustomerID      string   `json:"customerId,omitempty"`
	MandateID       string   `json:"mandateId,omitempty"`
	Amount          Amount   `json:"amount"`
	Times           *int     `json:"times,omitempty"`
	TimesRemaining  *int     `json:"timesRemaining,omitempty"`
	Interval        string   `json:"interval"`
	StartDate       string   `json:"startDate,omitempty"`
	NextPaymentDate string   `json:"nextPaymentDate,omitempty"`
	Description     string   `json:"description"`
	Method          string   `json:"method,omitempty"`
	WebhookURL      string   `json:"webhookUrl,omitempty"`
	Metadata        Metadata `json:"metadata,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	CanceledAt      string   `json:"canceledAt,omitempty"`
	Links           Links    `json:"_links,omitempty"`
}

// SubscriptionRequest is the body of create and update subscription.
// Amount is a pointer so partial updates can leave it out.
type SubscriptionRequest struct {
	Amount      *Amount  `json:"amount,omitempty"`
	Times       *int     `json:"times,omitempty"`
	Interval    string   `json:"interval,omitempty"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	WebhookURL  string   `json:"webhookUrl,omitempty"`
	MandateID   string   `json:"mandateId,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

type CustomerList struct {
	Count    int   `json:"count"`
	Embedded struct {
		Customers []Customer `json:"customers"`
	} `json:"_embedded"`
	Links Links `json:"_links,omitempty"`
}

type MandateList struct {
	Count    int   `json:"count"`
	Embedded struct {
		Mandates []Mandate `json:"mandates"`
	} `json:"_embedded"`
	Links Links `json:"_links,omitempty"`
}

type SubscriptionList struct {
	Count    int   `json:"count"`
	Embedded struct {
		Subscriptions []Subscription `json:"subscriptions"`
	} `json:"_embedded"`
	Links Links `json:"_links,omitempty"`
}

// NextFrom returns the cursor of the next page, or "" on the last page.
func (l Links) NextFrom() string {
	next, ok := l["next"]
	if !ok || next == nil {
		return ""
	}
	return queryValue(next.Href, "from")
}

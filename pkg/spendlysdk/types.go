package spendlysdk

// Request and response shapes shared by the service handlers and this client.

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	OTP      string `json:"otp,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Role       string `json:"role"`
	MFAEnabled bool   `json:"mfa_enabled"`
	CreatedAt  string `json:"created_at"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *string `json:"role,omitempty"`
}

type MFAEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

type MFAActivateRequest struct {
	Code string `json:"code"`
}

type Account struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Number    string `json:"number"`
	Balance   string `json:"balance"`
	UpdatedAt string `json:"updated_at"`
}

type DepositRequest struct {
	Amount string `json:"amount"`
}

type CreateCardRequest struct {
	CardNumber    string `json:"card_number"`
	Expiry        string `json:"expiry"`
	Holder        string `json:"holder"`
	CreditLimit   string `json:"credit_limit,omitempty"`
	CreditBalance string `json:"credit_balance,omitempty"`
}

type Card struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	LastFour      string `json:"last_four"`
	CardType      string `json:"card_type"`
	Expiry        string `json:"expiry"`
	Holder        string `json:"holder"`
	CreditLimit   string `json:"credit_limit"`
	CreditBalance string `json:"credit_balance"`
	CreatedAt     string `json:"created_at"`
}

type CreateBillRequest struct {
	CardID      string `json:"card_id"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type Bill struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	CardID      string `json:"card_id"`
	Amount      string `json:"amount"`
	Pending     string `json:"pending"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type PayBillRequest struct {
	Amount string `json:"amount"`

	// AccountNumber is optional; when set it must match the caller's
	// account number.
	AccountNumber string `json:"account_number,omitempty"`
}

type PaymentResult struct {
	Status      string       `json:"status"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Bill        *Bill        `json:"bill,omitempty"`
	Balance     string       `json:"balance"`
}

type Transaction struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BillID    string `json:"bill_id"`
	CardType  string `json:"card_type"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

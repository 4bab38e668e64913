package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spendlyhq/spendly/internal/finance/service"
	"github.com/spendlyhq/spendly/internal/finance/store"
	"github.com/spendlyhq/spendly/pkg/httpx"
	"github.com/spendlyhq/spendly/pkg/jwtx"
	"github.com/spendlyhq/spendly/pkg/slogx"

	_ "github.com/spendlyhq/spendly/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	corsOrigins  []string

	store              store.Store
	AuthService        *service.AuthService
	UserService        *service.UserService
	MFAService         *service.MFAService
	AccountService     *service.AccountService
	CardService        *service.CardService
	BillService        *service.BillService
	PaymentService     *service.PaymentService
	TransactionService *service.TransactionService
	ChatService        *service.ChatService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	corsOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		corsOrigins:  corsOrigins,
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		httpx.CORS(r.corsOrigins),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerMFA()
	r.registerAccount()
	r.registerCards()
	r.registerBills()
	r.registerTransactions()
	r.registerChat()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Spendly Finance API
//	@version		0.1.0
//	@description	Personal finance service covering accounts, credit cards, bill payments, transaction history and an AI finance assistant.
//	@description
//	@description				Session tokens are EdDSA-signed JWTs verifiable via the JWKS endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.RateLimitStrict),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.RateLimitStrict),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.RateLimitPublic),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitLenient),
		),
	)

	// Listing everyone is a privileged operation.
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("privileged"),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)

	r.Mux.Handle("PUT /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	r.Mux.Handle("POST /v1/auth/mfa/enroll",
		httpx.Chain(http.HandlerFunc(h.HandleEnroll),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)

	// Strict limit on code submission to prevent brute force of TOTP codes.
	r.Mux.Handle("POST /v1/auth/mfa/activate",
		httpx.Chain(http.HandlerFunc(h.HandleActivate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitStrict),
		),
	)
	r.Mux.Handle("POST /v1/auth/mfa/disable",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitStrict),
		),
	)
}

func (r *Router) registerAccount() {
	h := &AccountHandler{AccountService: r.AccountService}

	r.Mux.Handle("GET /v1/account",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitLenient),
		),
	)
	r.Mux.Handle("POST /v1/account/deposit",
		httpx.Chain(http.HandlerFunc(h.HandleDeposit),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
}

func (r *Router) registerCards() {
	h := &CardsHandler{CardService: r.CardService}

	r.Mux.Handle("POST /v1/cards",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
	r.Mux.Handle("GET /v1/cards",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitLenient),
		),
	)
	r.Mux.Handle("DELETE /v1/cards/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
}

func (r *Router) registerBills() {
	h := &BillsHandler{BillService: r.BillService, PaymentService: r.PaymentService}

	r.Mux.Handle("POST /v1/bills",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
	r.Mux.Handle("GET /v1/bills",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitLenient),
		),
	)
	r.Mux.Handle("POST /v1/bills/{id}/pay",
		httpx.Chain(http.HandlerFunc(h.HandlePay),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
}

func (r *Router) registerTransactions() {
	h := &TransactionsHandler{TransactionService: r.TransactionService}

	r.Mux.Handle("GET /v1/transactions",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitLenient),
		),
	)
}

func (r *Router) registerChat() {
	h := &ChatHandler{ChatService: r.ChatService}

	// Relayed completions are expensive upstream, keep the limit tight.
	r.Mux.Handle("POST /v1/chat",
		httpx.Chain(http.HandlerFunc(h.HandleChat),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitModerate),
		),
	)
	r.Mux.Handle("GET /v1/chat/history",
		httpx.Chain(http.HandlerFunc(h.HandleHistory),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.RateLimitLenient),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.RateLimitLenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.RateLimitLenient),
		),
	)
}

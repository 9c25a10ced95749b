package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
)

const (
	claimsContextKey   = "auth_claims"
	requestIDHeader    = "X-Request-ID"
	shutdownTimeout    = 5 * time.Second
	defaultTimeout     = 3 * time.Second
	errorUnauthorized  = "unauthorized"
	errorInvalidQuery  = "invalid_query"
	errorInvalidInput  = "invalid_input"
	errorNotFound      = "not_found"
	errorLedgerFailure = "ledger_error"
)

// Config holds the HTTP surface settings.
type Config struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewSessionValidator builds the tauth cookie validator used by authenticated routes.
func NewSessionValidator(signingKey string, issuer string, cookieName string) (*sessionvalidator.Validator, error) {
	validator, err := sessionvalidator.New(sessionvalidator.Config{
		SigningKey: []byte(signingKey),
		Issuer:     issuer,
		CookieName: cookieName,
	})
	if err != nil {
		return nil, fmt.Errorf("session validator: %w", err)
	}
	return validator, nil
}

// NewRouter wires the read-only UI routes. metricsHandler may be nil.
func NewRouter(cfg Config, creditService *ledger.Service, validator *sessionvalidator.Validator, metricsHandler http.Handler, logger *zap.Logger) *gin.Engine {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := &httpHandler{cfg: cfg, creditService: creditService, logger: logger}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept"},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	public := router.Group("/api")
	public.GET("/packs", handler.handlePacks)
	public.GET("/estimate", handler.handleEstimate)

	authenticated := router.Group("/api")
	authenticated.Use(validator.GinMiddleware(claimsContextKey))
	authenticated.GET("/balance", handler.handleBalance)
	authenticated.GET("/balance/can-afford", handler.handleCanAfford)
	authenticated.GET("/history", handler.handleHistory)
	authenticated.GET("/weekly-free", handler.handleWeeklyFree)

	return router
}

// Serve runs server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, server *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http api listening", zap.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type httpHandler struct {
	cfg           Config
	creditService *ledger.Service
	logger        *zap.Logger
}

func (handler *httpHandler) handlePacks(ctx *gin.Context) {
	packs := ledger.DefaultCreditPacks()
	payload := make([]packPayload, 0, len(packs))
	for _, pack := range packs {
		payload = append(payload, packPayload{
			ID:             pack.ID,
			Name:           pack.Name,
			Credits:        pack.BaseCredits.Int64(),
			BonusCredits:   pack.BonusCredits.Int64(),
			TotalCredits:   pack.TotalCredits().Int64(),
			PriceEUR:       pack.PriceEUR.StringFixed(2),
			PricePerCredit: pack.PricePerCredit().StringFixed(ledger.MoneyScale),
			Features:       pack.Features,
			Popular:        pack.Popular,
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"packs": payload})
}

func (handler *httpHandler) handleEstimate(ctx *gin.Context) {
	rawCost, err := decimal.NewFromString(strings.TrimSpace(ctx.Query("raw_cost_eur")))
	if err != nil || rawCost.IsNegative() {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorInvalidQuery, "raw_cost_eur must be a non-negative decimal"))
		return
	}
	credits, err := ledger.EstimateCreditCost(rawCost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorInvalidQuery, "raw_cost_eur exceeds "+ledger.MaxRawCostEUR.String()))
		return
	}
	charge := ledger.ComputeUsageCharge(rawCost)
	ctx.JSON(http.StatusOK, gin.H{
		"credits":           credits.Int64(),
		"raw_cost_eur":      charge.RawCostEUR.StringFixed(ledger.MoneyScale),
		"commission_eur":    charge.CommissionEUR.StringFixed(ledger.MoneyScale),
		"total_charged_eur": charge.TotalChargedEUR.StringFixed(ledger.MoneyScale),
	})
}

func (handler *httpHandler) handleBalance(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
	defer cancel()
	balance, err := handler.creditService.GetBalance(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, "balance lookup failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "balance": balance.Int64()})
}

func (handler *httpHandler) handleCanAfford(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	amount, err := strconv.ParseInt(ctx.Query("amount"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorInvalidQuery, "amount must be an integer"))
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
	defer cancel()
	canAfford, err := handler.creditService.CanAfford(requestCtx, userID, ledger.Credits(amount))
	if err != nil {
		handler.respondError(ctx, "affordability check failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"amount": amount, "can_afford": canAfford})
}

func (handler *httpHandler) handleHistory(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	query, err := parseHistoryQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorInvalidQuery, err.Error()))
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
	defer cancel()
	page, err := handler.creditService.GetHistory(requestCtx, userID, query)
	if err != nil {
		handler.respondError(ctx, "history lookup failed", err)
		return
	}
	transactions := make([]transactionPayload, 0, len(page.Transactions))
	for _, transaction := range page.Transactions {
		transactions = append(transactions, newTransactionPayload(transaction))
	}
	ctx.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"total":        page.Total,
		"page":         page.Page,
		"page_size":    page.PageSize,
		"total_pages":  page.TotalPages,
	})
}

func (handler *httpHandler) handleWeeklyFree(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
	defer cancel()
	remaining, err := handler.creditService.HasWeeklyFreeRemaining(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, "weekly free lookup failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"remaining": remaining, "limit": ledger.WeeklyFreeLimit})
}

func (handler *httpHandler) sessionUser(ctx *gin.Context) (ledger.UserID, bool) {
	claims := getClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorUnauthorized, "missing session"))
		return ledger.UserID{}, false
	}
	userID, err := ledger.NewUserID(claims.GetUserID())
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorUnauthorized, "session has no user"))
		return ledger.UserID{}, false
	}
	return userID, true
}

func (handler *httpHandler) respondError(ctx *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidUserID),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidTransactionType):
		ctx.JSON(http.StatusBadRequest, errorResponse(errorInvalidInput, err.Error()))
	case errors.Is(err, ledger.ErrAccountNotFound):
		ctx.JSON(http.StatusNotFound, errorResponse(errorNotFound, err.Error()))
	default:
		handler.logger.Error(message, zap.Error(err), zap.String("request_id", ctx.GetString(requestIDHeader)))
		ctx.JSON(http.StatusInternalServerError, errorResponse(errorLedgerFailure, message))
	}
}

func parseHistoryQuery(ctx *gin.Context) (ledger.HistoryQuery, error) {
	var query ledger.HistoryQuery
	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("page must be an integer")
		}
		query.Page = page
	}
	if raw := ctx.Query("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("page_size must be an integer")
		}
		query.PageSize = pageSize
	}
	if raw := strings.TrimSpace(ctx.Query("type")); raw != "" {
		transactionType, err := ledger.ParseTransactionType(raw)
		if err != nil {
			return query, fmt.Errorf("unknown transaction type %q", raw)
		}
		query.Type = &transactionType
	}
	return query, nil
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value := strings.TrimSpace(ctx.GetHeader(requestIDHeader))
		if value == "" {
			value = uuid.NewString()
		}
		ctx.Set(requestIDHeader, value)
		ctx.Header(requestIDHeader, value)
		ctx.Next()
	}
}

func getClaims(ctx *gin.Context) *sessionvalidator.Claims {
	claimsValue, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionvalidator.Claims)
	return claims
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

type packPayload struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Credits        int64    `json:"credits"`
	BonusCredits   int64    `json:"bonus_credits"`
	TotalCredits   int64    `json:"total_credits"`
	PriceEUR       string   `json:"price_eur"`
	PricePerCredit string   `json:"price_per_credit"`
	Features       []string `json:"features"`
	Popular        bool     `json:"popular"`
}

type usagePayload struct {
	AIProvider       string `json:"ai_provider,omitempty"`
	AIModel          string `json:"ai_model,omitempty"`
	RawTokenCount    *int64 `json:"raw_token_count,omitempty"`
	RawCostEUR       string `json:"raw_cost_eur"`
	CommissionEUR    string `json:"commission_eur"`
	TotalChargedEUR  string `json:"total_charged_eur"`
	TrailerProjectID string `json:"trailer_project_id,omitempty"`
	TrailerTaskID    string `json:"trailer_task_id,omitempty"`
}

type transactionPayload struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Amount         int64           `json:"amount"`
	BalanceBefore  int64           `json:"balance_before"`
	BalanceAfter   int64           `json:"balance_after"`
	Description    string          `json:"description,omitempty"`
	Usage          *usagePayload   `json:"usage,omitempty"`
	Metadata       json.RawMessage `json:"metadata"`
	CreatedUnixUTC int64           `json:"created_unix_utc"`
}

func newTransactionPayload(transaction ledger.CreditTransaction) transactionPayload {
	payload := transactionPayload{
		ID:             transaction.ID.String(),
		Type:           transaction.Type.String(),
		Amount:         transaction.Amount.Int64(),
		BalanceBefore:  transaction.BalanceBefore.Int64(),
		BalanceAfter:   transaction.BalanceAfter.Int64(),
		Description:    transaction.Description,
		Metadata:       json.RawMessage("{}"),
		CreatedUnixUTC: transaction.CreatedAt.UTC().Unix(),
	}
	if encoded, err := ledger.MarshalMetadata(transaction.Metadata); err == nil {
		payload.Metadata = encoded
	}
	if usage := transaction.Usage; usage != nil {
		payload.Usage = &usagePayload{
			AIProvider:       usage.AIProvider,
			AIModel:          usage.AIModel,
			RawTokenCount:    usage.RawTokenCount,
			RawCostEUR:       usage.RawCostEUR.StringFixed(ledger.MoneyScale),
			CommissionEUR:    usage.CommissionEUR.StringFixed(ledger.MoneyScale),
			TotalChargedEUR:  usage.TotalChargedEUR.StringFixed(ledger.MoneyScale),
			TrailerProjectID: usage.TrailerProjectID,
			TrailerTaskID:    usage.TrailerTaskID,
		}
	}
	return payload
}

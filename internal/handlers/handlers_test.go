package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finsight_dashboard/cmd/docs"
	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/dto"
	"github.com/SscSPs/finsight_dashboard/internal/handlers"
	"github.com/SscSPs/finsight_dashboard/internal/middleware"
	"github.com/SscSPs/finsight_dashboard/internal/platform/config"
	"github.com/SscSPs/finsight_dashboard/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockLedgerService    *MockLedgerService
	mockDashboardService *MockDashboardService
	mockTableService     *MockTableService
	mockInsightService   *MockInsightService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockLedgerService = new(MockLedgerService)
	suite.mockDashboardService = new(MockDashboardService)
	suite.mockTableService = new(MockTableService)
	suite.mockInsightService = new(MockInsightService)
	suite.router = suite.newRouter(nil)
}

func (suite *HandlerTestSuite) newRouter(aiLimiter *limiter.Limiter) *gin.Engine {
	r := gin.New()
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Ledger:    suite.mockLedgerService,
		Dashboard: suite.mockDashboardService,
		Table:     suite.mockTableService,
		Insight:   suite.mockInsightService,
	}
	handlers.RegisterRoutes(r, cfg, services, aiLimiter)
	return r
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func sampleView() *domain.TableView {
	tx := domain.DemoTransactions()[0]
	return &domain.TableView{
		Rows:        []domain.Transaction{tx},
		SelectedIDs: []string{tx.ID},
		AllSelected: true,
		State:       domain.DefaultTableQueryState(),
	}
}

// --- Health ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.do(http.MethodGet, "/swagger/index.html", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSwaggerDocumentsEveryRoute() {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	suite.Equal("/api/v1", doc.BasePath)

	for _, route := range suite.router.Routes() {
		if !strings.HasPrefix(route.Path, doc.BasePath) {
			continue
		}
		segments := strings.Split(strings.TrimPrefix(route.Path, doc.BasePath), "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path := strings.Join(segments, "/")
		if path == "" {
			path = "/"
		}
		operations, ok := doc.Paths[path]
		if suite.Truef(ok, "path %s is not documented", path) {
			suite.Containsf(operations, strings.ToLower(route.Method), "%s %s is not documented", route.Method, path)
		}
	}
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestListCategories() {
	w := suite.do(http.MethodGet, "/api/v1/categories", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CategoryResponse
	suite.decode(w, &body)
	suite.Len(body, len(domain.Categories))
	suite.Equal(domain.Housing, body[0].Name)
	suite.Equal(domain.Housing.Color(), body[0].Color)
}

func (suite *HandlerTestSuite) TestListTransactions_Success() {
	txs := domain.DemoTransactions()
	suite.mockLedgerService.On("ListTransactions", mock.Anything).Return(txs, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.decode(w, &body)
	suite.Equal(len(txs), body.Count)
	suite.Equal("t1", body.Transactions[0].ID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_ServiceError() {
	suite.mockLedgerService.On("ListTransactions", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestLoadDemo() {
	suite.mockLedgerService.On("LoadDemo", mock.Anything).Return(domain.DemoTransactions(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/demo", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.decode(w, &body)
	suite.Equal(len(domain.DemoTransactions()), body.Count)
}

func (suite *HandlerTestSuite) TestUpload_LoadsDemoForAnyFile() {
	suite.mockLedgerService.On("Upload", mock.Anything, "october.pdf").Return(domain.DemoTransactions(), nil).Once()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "october.pdf")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("%PDF-1.4"))
	suite.Require().NoError(mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpload_MissingFile() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/upload", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockLedgerService.On("GetTransaction", mock.Anything, "t99").
		Return(nil, fmt.Errorf("transaction t99: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/t99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetTransaction_Success() {
	tx := domain.DemoTransactions()[3]
	detail := &domain.TransactionDetail{
		Transaction:  tx,
		DisplayLabel: tx.DisplayLabel(),
		History: []domain.AuditLogEntry{
			{ID: "a1", TransactionID: tx.ID, OldCategory: domain.Other, NewCategory: domain.Transportation, Source: domain.SourceUser, Timestamp: time.Now()},
		},
	}
	suite.mockLedgerService.On("GetTransaction", mock.Anything, tx.ID).Return(detail, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/"+tx.ID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionDetailResponse
	suite.decode(w, &body)
	suite.Equal(tx.ID, body.Transaction.ID)
	suite.Len(body.History, 1)
}

func (suite *HandlerTestSuite) TestUpdateCategory_Success() {
	tx := domain.DemoTransactions()[3]
	tx.Category = domain.Other
	suite.mockLedgerService.On("RecategorizeTransaction", mock.Anything, "t4", domain.Other).Return(&tx, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/transactions/t4/category", dto.UpdateCategoryRequest{Category: "Other"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.decode(w, &body)
	suite.Equal(domain.Other, body.Category)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateCategory_UnknownCategoryRejected() {
	w := suite.do(http.MethodPatch, "/api/v1/transactions/t4/category", dto.UpdateCategoryRequest{Category: "Crypto"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecategorizeTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetHistory() {
	entries := []domain.AuditLogEntry{{ID: "a2", TransactionID: "t3"}, {ID: "a1", TransactionID: "t3"}}
	suite.mockLedgerService.On("GetHistory", mock.Anything, "t3").Return(entries, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/t3/history", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.AuditLogEntryResponse
	suite.decode(w, &body)
	suite.Equal([]string{"a2", "a1"}, []string{body[0].ID, body[1].ID})
}

func (suite *HandlerTestSuite) TestGetSuggestion_None() {
	suite.mockLedgerService.On("SuggestCategory", mock.Anything, "t17").Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/t17/suggestion", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"suggestion":null}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestApplySuggestion_NoSuggestion() {
	suite.mockLedgerService.On("ApplySuggestion", mock.Anything, "t17").
		Return(nil, fmt.Errorf("no suggestion for t17: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/t17/suggestion/apply", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAuditLog_Paginated() {
	base := time.Date(2023, 10, 31, 9, 0, 0, 0, time.UTC)
	entries := []domain.AuditLogEntry{
		{ID: "a3", Timestamp: base.Add(3 * time.Minute)},
		{ID: "a2", Timestamp: base.Add(2 * time.Minute)},
		{ID: "a1", Timestamp: base.Add(time.Minute)},
	}
	suite.mockLedgerService.On("ListAuditLog", mock.Anything).Return(entries, nil).Twice()

	w := suite.do(http.MethodGet, "/api/v1/audit-log?limit=2", nil)
	suite.Equal(http.StatusOK, w.Code)
	var first dto.ListAuditLogResponse
	suite.decode(w, &first)
	suite.Len(first.Entries, 2)
	suite.Require().NotNil(first.NextToken)
	suite.Equal(pagination.EncodeToken(entries[1].Timestamp, "a2"), *first.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/audit-log?limit=2&nextToken="+url.QueryEscape(*first.NextToken), nil)
	suite.Equal(http.StatusOK, w.Code)
	var second dto.ListAuditLogResponse
	suite.decode(w, &second)
	suite.Len(second.Entries, 1)
	suite.Equal("a1", second.Entries[0].ID)
	suite.Nil(second.NextToken)
}

func (suite *HandlerTestSuite) TestListAuditLog_InvalidLimit() {
	suite.mockLedgerService.On("ListAuditLog", mock.Anything).Return([]domain.AuditLogEntry{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/audit-log?limit=0", nil)

	suite.Equal(http.StatusOK, w.Code, "zero limit is omitted")

	w = suite.do(http.MethodGet, "/api/v1/audit-log?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNumberOfCalls(suite.T(), "ListAuditLog", 1)
}

func (suite *HandlerTestSuite) TestListAuditLog_BadToken() {
	suite.mockLedgerService.On("ListAuditLog", mock.Anything).Return([]domain.AuditLogEntry{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/audit-log?nextToken=not-a-token", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Dashboard ---

func (suite *HandlerTestSuite) TestGetSummary_RoundsForDisplay() {
	summary := &domain.DashboardSummary{
		Metrics: domain.FinancialMetrics{
			TotalIncome:         decimal.RequireFromString("5200"),
			TotalSpend:          decimal.RequireFromString("2770.07"),
			SavingsRate:         decimal.RequireFromString("46.7294230769230769"),
			BurnRate:            decimal.RequireFromString("162.9452941176470588"),
			RiskScore:           30,
			TopSpendingCategory: string(domain.Housing),
		},
		TransactionCount: 20,
	}
	suite.mockDashboardService.On("GetSummary", mock.Anything).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.DashboardSummaryResponse
	suite.decode(w, &body)
	suite.Equal("46.73", body.Metrics.SavingsRate.String())
	suite.Equal("162.95", body.Metrics.BurnRate.String())
	suite.Equal(30, body.Metrics.RiskScore)
	suite.Equal("Housing", body.Metrics.TopSpendingCategory)
}

// --- Table ---

func (suite *HandlerTestSuite) TestGetView_WithoutQuery() {
	suite.mockTableService.On("GetView", mock.Anything).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/table", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TableViewResponse
	suite.decode(w, &body)
	suite.Len(body.Rows, 1)
	suite.True(body.AllSelected)
	suite.mockTableService.AssertNotCalled(suite.T(), "SeedFromQuery", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetView_SeedsFromQuery() {
	suite.mockTableService.On("SeedFromQuery", mock.Anything, "q=uber&sort=amount").Return(sampleView(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/table?q=uber&sort=amount", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTableService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestToggleSort_InvalidKey() {
	w := suite.do(http.MethodPost, "/api/v1/table/sort", dto.SortRequest{Key: "merchant"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestToggleSort_Success() {
	suite.mockTableService.On("ToggleSort", mock.Anything, domain.SortByAmount).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/table/sort", dto.SortRequest{Key: "amount"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTableService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSetFilters_MapsRequest() {
	expected := domain.TableFilters{
		Categories: []domain.Category{domain.FoodAndDining},
		StartDate:  "2023-10-01",
		MinAmount:  "abc",
	}
	suite.mockTableService.On("SetFilters", mock.Anything, expected).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/table/filters", dto.FiltersRequest{
		Categories: []string{"Food & Dining", "Food & Dining"},
		StartDate:  "2023-10-01",
		MinAmount:  "abc",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTableService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSetFilters_UnknownCategoryRejected() {
	w := suite.do(http.MethodPut, "/api/v1/table/filters", dto.FiltersRequest{Categories: []string{"Crypto"}})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestToggleCategoryFilter() {
	suite.mockTableService.On("ToggleCategoryFilter", mock.Anything, domain.Shopping).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/table/filters/category", dto.CategoryRequest{Category: "Shopping"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestClearFilters() {
	suite.mockTableService.On("ClearFilters", mock.Anything).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/table/filters", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestToggleSelection_RowNotVisible() {
	suite.mockTableService.On("ToggleSelection", mock.Anything, "t99").
		Return(nil, fmt.Errorf("row t99: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/table/selection/toggle", dto.ToggleSelectionRequest{TransactionID: "t99"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestToggleSelectAll() {
	suite.mockTableService.On("ToggleSelectAll", mock.Anything).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/table/selection/all", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestBulkRecategorize_NoSelection() {
	suite.mockTableService.On("BulkRecategorize", mock.Anything, domain.Shopping).Return(nil, apperrors.ErrNoSelection).Once()

	w := suite.do(http.MethodPost, "/api/v1/table/bulk/category", dto.CategoryRequest{Category: "Shopping"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestBulkToggleFlag() {
	suite.mockTableService.On("BulkToggleFlag", mock.Anything).Return(sampleView(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/table/bulk/flag", nil)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Insights ---

func (suite *HandlerTestSuite) TestGetInsights() {
	insights := []domain.AIInsight{{ID: "gen-0", Title: "Dining up", Type: domain.InsightWarning}}
	suite.mockInsightService.On("GenerateInsights", mock.Anything).Return(insights, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/insights", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.InsightsResponse
	suite.decode(w, &body)
	suite.Equal(insights, body.Insights)
}

func (suite *HandlerTestSuite) TestSendMessage() {
	reply := &domain.ChatMessage{ID: "m2", Role: domain.RoleModel, Text: "You spent most on Housing."}
	suite.mockInsightService.On("SendMessage", mock.Anything, "Where does my money go?").Return(reply, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/chat", dto.ChatRequest{Message: "Where does my money go?"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ChatResponse
	suite.decode(w, &body)
	suite.Equal(reply.Text, body.Reply.Text)
}

func (suite *HandlerTestSuite) TestSendMessage_EmptyRejected() {
	w := suite.do(http.MethodPost, "/api/v1/chat", dto.ChatRequest{})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListMessages() {
	suite.mockInsightService.On("ListMessages", mock.Anything).Return([]domain.ChatMessage{{ID: "m1", Role: domain.RoleUser, Text: "hi"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/chat", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ChatHistoryResponse
	suite.decode(w, &body)
	suite.Len(body.Messages, 1)
}

func (suite *HandlerTestSuite) TestInsights_RateLimited() {
	aiLimiter, err := middleware.NewRateLimiter("1-M")
	suite.Require().NoError(err)
	suite.router = suite.newRouter(aiLimiter)
	suite.mockInsightService.On("GenerateInsights", mock.Anything).Return([]domain.AIInsight{}, nil).Once()

	first := suite.do(http.MethodGet, "/api/v1/insights", nil)
	second := suite.do(http.MethodGet, "/api/v1/insights", nil)

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)
	suite.mockInsightService.AssertNumberOfCalls(suite.T(), "GenerateInsights", 1)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

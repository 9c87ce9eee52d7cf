//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fundflow/backend/config"
	"github.com/fundflow/backend/internal/domain/entity"
	"github.com/fundflow/backend/internal/infra/dependency"
	"github.com/fundflow/backend/internal/integration/persistence"
	"github.com/fundflow/backend/internal/integration/persistence/model"
	"github.com/fundflow/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	currentUserID         uuid.UUID
	currentCategoryID     uuid.UUID
	currentGoalID         uuid.UUID
	savingsGoalID         uuid.UUID
	currentBudgetID       uuid.UUID
	currentTransactionID  uuid.UUID
	currentNotificationID uuid.UUID
	lastID                uuid.UUID
}

type response struct {
	status      int
	contentType string
	raw         []byte
	body        any
	err         error
}

var serverInit sync.Once
var testDB *mock.Db
var apiStub *mock.ApiMock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("EMAIL_WORKER_ENABLED", "false")
		_ = os.Setenv("BASE_CURRENCY", "LKR")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"categories":     &model.CategoryModel{},
			"goals":          &model.GoalModel{},
			"goal_transfers": &model.GoalTransferModel{},
			"budgets":        &model.BudgetModel{},
			"transactions":   &model.TransactionModel{},
			"notifications":  &model.NotificationModel{},
			"reports":        &model.ReportModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Domain setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a savings goal exists with balance "([^"]*)"$`, test.aSavingsGoalExistsWithBalance)
	ctx.Given(`^a goal exists with name "([^"]*)" and target "([^"]*)"$`, test.aGoalExistsWithNameAndTarget)
	ctx.Given(`^a goal exists with name "([^"]*)", target "([^"]*)" and balance "([^"]*)"$`, test.aGoalExistsWithNameTargetAndBalance)
	ctx.Given(`^a budget exists for category "([^"]*)" with amount "([^"]*)" and duration "([^"]*)"$`, test.aBudgetExistsForCategory)
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" exists in category "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^an unread notification exists with title "([^"]*)"$`, test.anUnreadNotificationExistsWithTitle)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response content type should be "([^"]*)"$`, test.theResponseContentTypeShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.savingsGoalID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentTransactionID = uuid.Nil
	t.currentNotificationID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
		// Mirror production startup: the registry always carries the
		// default categories.
		seedRepo := persistence.NewCategoryRepository(t.db.DbConn)
		_ = seedRepo.Seed(context.Background(), entity.DefaultCategories())
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		// Upstream providers (exchange rates, PDF renderer) are stubbed
		// with a local HTTP server.
		apiStub = mock.NewApiServer()
		apiStub.Start()
		apiStub.SetResponse(-1, http.MethodGet, "/rates", http.StatusOK, map[string]any{
			"rates": map[string]any{
				"LKR": 1,
				"USD": 300,
				"EUR": 330,
			},
		})
		apiStub.SetResponse(-1, http.MethodPost, "/render", http.StatusOK, map[string]any{
			"rendered": true,
		})

		_ = os.Setenv("CURRENCY_RATES_URL", apiStub.GetUrl()+"/rates")
		_ = os.Setenv("PDF_SERVICE_URL", apiStub.GetUrl()+"/render")

		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			if err != nil {
				panic(fmt.Sprintf("failed to wire test server: %v", err))
			}
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		GoalAlerts:         true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

// iAmLoggedInAs switches the current user, creating them if needed.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "DefaultPass123!", "Test User "+email); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	return t.issueTokens(email)
}

func (t *testContext) issueTokens(email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "fundflow",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "fundflow",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	// The registry is pre-seeded with the default categories, so reuse an
	// existing row when the name already exists.
	var existing model.CategoryModel
	err := t.db.DbConn.Where("name = ?", name).First(&existing).Error
	if err == nil {
		t.currentCategoryID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Type:      categoryType,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aSavingsGoalExistsWithBalance(balance string) error {
	current, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	goalID := uuid.New()
	t.savingsGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          entity.SavingsGoalName,
		TargetAmount:  decimal.NewFromInt(1000000),
		CurrentAmount: current,
		Status:        string(entity.GoalStatusInProgress),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) aGoalExistsWithNameAndTarget(name, target string) error {
	return t.aGoalExistsWithNameTargetAndBalance(name, target, "0")
}

func (t *testContext) aGoalExistsWithNameTargetAndBalance(name, target, balance string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}
	current, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	status := entity.GoalStatusInProgress
	if current.GreaterThanOrEqual(targetAmount) {
		status = entity.GoalStatusCompleted
	}

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: current,
		Status:        string(status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) aBudgetExistsForCategory(category, amount, duration string) error {
	budgetAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:        budgetID,
		UserID:    t.currentUserID,
		Category:  category,
		Amount:    budgetAmount,
		Duration:  duration,
		Currency:  "LKR",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) aTransactionExists(transactionType, amount, category, date string) error {
	transactionAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	var transactionDate time.Time
	if date == "today" {
		transactionDate = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		transactionDate, err = time.Parse("2006-01-02", date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
	}

	transactionID := uuid.New()
	t.currentTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		Type:      transactionType,
		Amount:    transactionAmount,
		Category:  category,
		Date:      transactionDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) anUnreadNotificationExistsWithTitle(title string) error {
	notificationID := uuid.New()
	t.currentNotificationID = notificationID

	notificationModel := &model.NotificationModel{
		ID:        notificationID,
		UserID:    t.currentUserID,
		Type:      string(entity.NotificationTypeGoalCompleted),
		Title:     title,
		Message:   "Test notification message",
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	return t.db.DbConn.Create(notificationModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{savings_goal_id}}", t.savingsGoalID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.currentTransactionID.String())
	content = strings.ReplaceAll(content, "{{notification_id}}", t.currentNotificationID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		raw:         bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the id of a created or returned resource for later steps
		if data, ok := responseBody["data"].(map[string]any); ok {
			if idStr, ok := data["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.lastID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseContentTypeShouldBe(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.HasPrefix(t.response.contentType, expected) {
		return fmt.Errorf("expected content type %q, got %q", expected, t.response.contentType)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}

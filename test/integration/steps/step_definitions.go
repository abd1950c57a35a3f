//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	timeMock          *mock.Time
	categoryIDs       map[string]string
	lastTransactionID string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testServerPort int
	testDB         *mock.Db
	testClock      *mock.Time
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initializePort()
		testClock = mock.NewTime()
		testDB = mock.NewDb(map[string]any{
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
			"budgets":      &model.BudgetModel{},
		})
	})

	ctx.AfterSuite(func() {
		_ = mock.ClearRedis(mock.NewRedis())
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Data setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and color "([^"]*)"$`, test.aCategoryExistsWithNameAndColor)
	ctx.Given(`^a transaction of "([^"]*)" on "([^"]*)" described as "([^"]*)" in category "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^an uncategorized transaction of "([^"]*)" on "([^"]*)" described as "([^"]*)"$`, test.anUncategorizedTransactionExists)
	ctx.Given(`^a transaction with a missing date exists$`, test.aTransactionWithAMissingDateExists)
	ctx.Given(`^a budget of "([^"]*)" exists for category "([^"]*)" in month "([^"]*)"$`, test.aBudgetExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should exist$`, test.theResponseHeaderShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.uri = fmt.Sprintf("http://localhost:%d", testServerPort)
	t.db = testDB
	t.timeMock = testClock
	t.headers = make(map[string]string)
	t.response = nil
	t.categoryIDs = make(map[string]string)
	t.lastTransactionID = ""

	t.timeMock.Reset()
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.AllowedOrigins = []string{"*"}

		injector := dependency.NewInjector(
			cfg,
			testDB.DbConn,
			func() bool { return testDB != nil && testDB.DbConn != nil },
			middleware.NewRedisRateLimitStore(mock.NewRedis()),
			dependency.WithClock(testClock.Now),
		)
		engine := injector.Router.Setup("test")

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}
		go func() {
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(parsed)
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndColor(name, color string) error {
	category, err := entity.NewCategory(name, color)
	if err != nil {
		return err
	}
	if err := t.db.DbConn.Create(model.CategoryFromEntity(category)).Error; err != nil {
		return err
	}
	t.categoryIDs[name] = category.ID
	return nil
}

func (t *testContext) aTransactionExists(amount, date, description, categoryName string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q was not created in this scenario", categoryName)
	}
	return t.insertTransaction(amount, date, description, categoryID)
}

func (t *testContext) anUncategorizedTransactionExists(amount, date, description string) error {
	return t.insertTransaction(amount, date, description, entity.UncategorizedCategoryID)
}

func (t *testContext) insertTransaction(amount, date, description, categoryID string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	transaction, err := entity.NewTransaction(value, parsed, description, categoryID)
	if err != nil {
		return err
	}
	if err := t.db.DbConn.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		return err
	}
	t.lastTransactionID = transaction.ID
	return nil
}

func (t *testContext) aTransactionWithAMissingDateExists() error {
	transaction, err := entity.NewTransaction(decimal.NewFromInt(1), time.Time{}, "Broken", "")
	if err != nil {
		return err
	}
	return t.db.DbConn.Create(model.TransactionFromEntity(transaction)).Error
}

func (t *testContext) aBudgetExists(amount, categoryName, month string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q was not created in this scenario", categoryName)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	parsedMonth, err := valueobject.ParseMonth(month)
	if err != nil {
		return err
	}

	budget, err := entity.NewBudget(categoryID, value, parsedMonth)
	if err != nil {
		return err
	}
	return t.db.DbConn.Create(model.BudgetFromEntity(budget)).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	content := t.replacePlaceholders(body.Content)
	return t.executeRequest(method, t.replacePlaceholders(path), []byte(content))
}

// replacePlaceholders substitutes {{category:Name}} and {{last_transaction_id}}.
func (t *testContext) replacePlaceholders(content string) string {
	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category:"+name+"}}", id)
	}
	return strings.ReplaceAll(content, "{{last_transaction_id}}", t.lastTransactionID)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
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

	t.response = &response{status: resp.StatusCode, headers: resp.Header.Clone()}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the id of a created transaction
	if transaction, ok := responseBody["transaction"].(map[string]any); ok {
		if id, ok := transaction["id"].(string); ok {
			t.lastTransactionID = id
		}
	}
	return nil
}

func (t *testContext) bodyMap() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
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
	_, err := t.bodyMap()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.bodyMap()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.bodyMap()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	if actualValue := fmt.Sprintf("%v", value); actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.bodyMap()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.bodyMap()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldExist(header string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.headers.Get(header) == "" {
		return fmt.Errorf("header '%s' not found in response", header)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	modelValue, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(modelValue).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Model(modelValue)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
	ctx.Step(`^item (\d+) of "([^"]*)" should have "([^"]*)" equal to "([^"]*)"$`, itemOfListShouldHaveFieldEqualTo)
}

// registerFixtureSteps registers data setup steps that go through the API.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^a category "([^"]*)" of kind "([^"]*)" exists$`, aCategoryExists)
	ctx.Step(`^a category "([^"]*)" of kind "([^"]*)" with icon "([^"]*)" exists$`, aCategoryWithIconExists)
	ctx.Step(`^a "([^"]*)" transaction "([^"]*)" of "([^"]*)" in "([^"]*)" on "([^"]*)" exists$`, aTransactionExists)
	ctx.Step(`^I refresh my session$`, iRefreshMySession)
	ctx.Step(`^I send a refresh request with the previous token$`, iSendARefreshRequestWithThePreviousToken)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	// An explicitly set Authorization header wins over the stored token
	if _, overridden := tc.requestHeaders["Authorization"]; !overridden && tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, []byte(body.Content))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func iAmRegisteredAs(ctx context.Context, username, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return fmt.Errorf("failed to parse auth response: %w", err)
	}
	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	return iAmRegisteredAs(ctx, "resident", "secret123")
}

func aCategoryExists(ctx context.Context, name, kind string) error {
	return aCategoryWithIconExists(ctx, name, kind, "other")
}

func aCategoryWithIconExists(ctx context.Context, name, kind, icon string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{
		"name": name,
		"kind": kind,
		"icon": icon,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/categories", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("category setup failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func aTransactionExists(ctx context.Context, kind, title, amount, categoryName, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{
		"title":         title,
		"amount":        amount,
		"category_name": categoryName,
		"kind":          kind,
		"date":          date,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("transaction setup failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iRefreshMySession(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{"refresh_token": tc.refreshToken})
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/refresh", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &tokens); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}
	tc.prevRefreshToken = tc.refreshToken
	tc.accessToken = tokens.AccessToken
	tc.refreshToken = tokens.RefreshToken
	return nil
}

func iSendARefreshRequestWithThePreviousToken(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{"refresh_token": tc.prevRefreshToken})
	return tc.doRequest(http.MethodPost, "/api/v1/auth/refresh", payload)
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// lookupField walks a dotted path through the parsed response body.
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field '%s' is not an object in path '%s'", part, path)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(field)
	return err
}

func (tc *TestContext) lookupList(field string) ([]interface{}, error) {
	value, err := tc.lookupField(field)
	if err != nil {
		return nil, err
	}
	list, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field '%s' is not a list", field)
	}
	return list, nil
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	list, err := tc.lookupList(field)
	if err != nil {
		return err
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in '%s', got %d. Body: %s", expected, field, len(list), string(tc.responseBody))
	}
	return nil
}

func itemOfListShouldHaveFieldEqualTo(ctx context.Context, index int, listField, itemField, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	list, err := tc.lookupList(listField)
	if err != nil {
		return err
	}
	if index >= len(list) {
		return fmt.Errorf("index %d out of range for '%s' with %d items", index, listField, len(list))
	}

	item, ok := list[index].(map[string]interface{})
	if !ok {
		return fmt.Errorf("item %d of '%s' is not an object", index, listField)
	}

	actual := fmt.Sprintf("%v", item[itemField])
	if actual != expected {
		return fmt.Errorf("item %d field '%s' expected '%s', got '%s'", index, itemField, expected, actual)
	}
	return nil
}

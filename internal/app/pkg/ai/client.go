// Package ai talks to the external inference service over HTTP.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Message is one prior conversation turn forwarded as context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile is the subset of the user's health profile the assistant may use.
type Profile struct {
	RealName       string   `json:"realName,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	BirthDate      string   `json:"birthDate,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	BloodType      string   `json:"bloodType,omitempty"`
	Allergies      string   `json:"allergies,omitempty"`
	MedicalHistory string   `json:"medicalHistory,omitempty"`
	FamilyHistory  string   `json:"familyHistory,omitempty"`
}

// RecordContext summarizes one medical record for the assistant.
type RecordContext struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	RecordType  string `json:"recordType,omitempty"`
	Description string `json:"description,omitempty"`
	Hospital    string `json:"hospital,omitempty"`
	Doctor      string `json:"doctor,omitempty"`
	RecordDate  string `json:"recordDate,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ChatRequest is the payload of POST {baseURL}/api/chat.
type ChatRequest struct {
	Message        string          `json:"message"`
	UserProfile    *Profile        `json:"userProfile,omitempty"`
	MedicalRecords []RecordContext `json:"medicalRecords,omitempty"`
	History        []Message       `json:"history"`
}

// ImageRequest is the payload of POST {baseURL}/api/analyze-image-url.
type ImageRequest struct {
	Message     string   `json:"message"`
	ImageURL    string   `json:"imageUrl"`
	UserProfile *Profile `json:"userProfile,omitempty"`
}

// Client is the capability the chat handlers depend on; stub it in tests.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
	AnalyzeImage(ctx context.Context, req ImageRequest) (string, error)
}

// HTTPClient is the production Client over a plain JSON round trip.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	return c.post(ctx, "/api/chat", req)
}

func (c *HTTPClient) AnalyzeImage(ctx context.Context, req ImageRequest) (string, error) {
	return c.post(ctx, "/api/analyze-image-url", req)
}

func (c *HTTPClient) post(ctx context.Context, path string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai service returned status %d", resp.StatusCode)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Response == "" {
		return "", fmt.Errorf("ai service returned an empty response")
	}

	return out.Response, nil
}

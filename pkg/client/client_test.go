package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firewatch/wildfire-uav/pkg/models"
)

func TestMonitor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/monitor" {
			t.Errorf("Expected request to /monitor, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"constants": {"securityDistance": 4, "fireSpreadSpeed": 6},
			"dynamicValues": {"uavDetails": [{"id": 1, "x": 2, "y": 3}]}
		}`))
	}))
	defer server.Close()

	c, err := NewFirewatchClient(server.URL)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	snap, err := c.Monitor(context.Background())
	if err != nil {
		t.Fatalf("Monitor failed: %v", err)
	}

	if len(snap.UAVs) != 1 || snap.UAVs[0].ID != 1 {
		t.Errorf("Unexpected UAVs: %+v", snap.UAVs)
	}
	if snap.SecurityDistance != 4 {
		t.Errorf("Expected security distance 4, got %f", snap.SecurityDistance)
	}
	if snap.ObservationRadius != models.DefaultObservationRadius {
		t.Errorf("Expected default observation radius, got %f", snap.ObservationRadius)
	}
}

func TestMonitorTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "exemplar down", http.StatusInternalServerError)
	}))
	defer server.Close()

	c, err := NewFirewatchClient(server.URL)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = c.Monitor(context.Background())
	if err == nil {
		t.Fatal("Expected error for non-success monitor status")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected TransportError, got %T: %v", err, err)
	}
	if transportErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", transportErr.StatusCode)
	}
	if transportErr.Op != "GET /monitor" {
		t.Errorf("Unexpected operation: %s", transportErr.Op)
	}
}

func TestExecute(t *testing.T) {
	var received models.Adjustment

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/execute" {
			t.Errorf("Expected request to /execute, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPut {
			t.Errorf("Expected PUT, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode adjustment: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := NewFirewatchClient(server.URL)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	adj := models.MoveAdjustment(7, 1, 2, 2)
	if err := c.Execute(context.Background(), adj); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if received != adj {
		t.Errorf("Expected adjustment %+v, got %+v", adj, received)
	}
}

func TestExecuteTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad adjustment", http.StatusBadRequest)
	}))
	defer server.Close()

	c, err := NewFirewatchClient(server.URL)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	err = c.Execute(context.Background(), models.MoveAdjustment(1, 0, 0, 1))

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected TransportError, got %T: %v", err, err)
	}
	if transportErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", transportErr.StatusCode)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "://bad"}); err == nil {
		t.Errorf("Expected error for invalid base URL")
	}
}

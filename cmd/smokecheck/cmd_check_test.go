package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    map[string]string
	}{
		{
			name:    "empty input",
			headers: nil,
			want:    map[string]string{},
		},
		{
			name:    "single header",
			headers: []string{"Authorization:Bearer token123"},
			want:    map[string]string{"Authorization": "Bearer token123"},
		},
		{
			name:    "multiple headers",
			headers: []string{"X-API-Key:secret", "Accept-Language:en"},
			want: map[string]string{
				"X-API-Key":       "secret",
				"Accept-Language": "en",
			},
		},
		{
			name:    "header with spaces around colon",
			headers: []string{"Authorization : Bearer token"},
			want:    map[string]string{"Authorization": "Bearer token"},
		},
		{
			name:    "header with multiple colons in value",
			headers: []string{"X-URL:http://example.com:8080"},
			want:    map[string]string{"X-URL": "http://example.com:8080"},
		},
		{
			name:    "invalid header without colon ignored",
			headers: []string{"InvalidHeader", "Valid:Header"},
			want:    map[string]string{"Valid": "Header"},
		},
		{
			name:    "empty value",
			headers: []string{"X-Empty:"},
			want:    map[string]string{"X-Empty": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseHeaders(tt.headers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseHeaders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestBody(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"left":"a","right":"b"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{left}`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		inline  string
		file    string
		want    string
		wantErr bool
	}{
		{name: "no body"},
		{name: "inline", inline: `{"left":"a"}`, want: `{"left":"a"}`},
		{name: "file", file: good, want: `{"left":"a","right":"b"}`},
		{name: "invalid inline", inline: `not json`, wantErr: true},
		{name: "invalid file", file: bad, wantErr: true},
		{name: "missing file", file: filepath.Join(dir, "missing.json"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requestBody(tt.inline, tt.file)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got body %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
			if tt.want == "" && got != nil {
				t.Errorf("body = %v, want nil", got)
			}
		})
	}
}

package services

import "net/http"

// Accessors for external test packages.

func (a *APIService) BaseURL() string { return a.baseURL }

func (a *APIService) HTTPClient() *http.Client { return a.httpClient }

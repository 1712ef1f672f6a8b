package service_mocks

//go:generate mockgen -destination=service_mocks.go -package=service_mocks bank-console/internal/services AuditServiceInterface,ActivityLoggerInterface,MetricsRecorderInterface

// Mocks are generated in reflect mode for the interfaces whose signatures only
// use models types, so tests inside package services can import them.
// To regenerate the mocks, run:
//   go generate ./internal/services/service_mocks

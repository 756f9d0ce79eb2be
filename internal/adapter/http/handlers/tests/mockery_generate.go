package tests

// The mocks in mocks_test.go are maintained by hand. If the service ports
// grow past what hand maintenance is worth, switch to generated ones:
//
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name NotificationService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename notification_service_mock.go --with-expecter

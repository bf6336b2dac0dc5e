//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../menu_source.go      -destination=./mock_menu_source.go      -package=mocks
//go:generate mockgen -source=../geocode.go          -destination=./mock_geocode.go          -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../services.go         -destination=./mock_services.go         -package=mocks

package mocks

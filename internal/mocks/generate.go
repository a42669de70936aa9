package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Generator --dir ../domain/matchstats --output domain/matchstats --outpkg matchstatsmock --filename generator_mock.go

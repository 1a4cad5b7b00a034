//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.
package main

import (
	"github.com/webcodur/feelandnote-services-recommend/internal/conf"
	"github.com/webcodur/feelandnote-services-recommend/internal/controllers"
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories"
	"github.com/webcodur/feelandnote-services-recommend/internal/server"
	"github.com/webcodur/feelandnote-services-recommend/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp 组装全部依赖并构建 Kratos 应用。
func wireApp(*conf.Server, *conf.Data, *conf.Recommend, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		server.ProviderSet,
		newApp,
	))
}

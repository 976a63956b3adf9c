// Package email delivers outbound mail through Mailgun, with Handlebars
// templates embedded in the binary.
package email

import (
	"go.uber.org/fx"
)

var Module = fx.Module("email",
	fx.Provide(
		NewConfig,
		NewTemplateService,
		NewSender,
	),
)

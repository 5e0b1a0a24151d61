// Package mock holds gomock doubles for the use-case ports; regenerate with go generate ./tests/mock.
package mock

//go:generate mockgen -source=../../internal/usecase/commands/auth.go -destination=commands/auth.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/user.go -destination=commands/user.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/quadra.go -destination=commands/quadra.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/agendamento.go -destination=commands/agendamento.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/owner_request.go -destination=commands/owner_request.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/admin.go -destination=commands/admin.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/queries/user.go -destination=queries/user.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/quadra.go -destination=queries/quadra.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/agendamento.go -destination=queries/agendamento.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/owner_request.go -destination=queries/owner_request.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/admin.go -destination=queries/admin.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/shared/uow.go -destination=shared/uow.go -package=sharedmock
//go:generate mockgen -source=../../internal/usecase/shared/ports.go -destination=shared/ports.go -package=sharedmock
//go:generate mockgen -source=../../internal/usecase/token_validator.go -destination=usecase/token_validator.go -package=usecasemock

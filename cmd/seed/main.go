package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/domain/user"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/infra/uow"
	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/password"
	"ifuut-api/internal/pkg/ptr"
	"ifuut-api/internal/usecase/shared"
	"ifuut-api/migrations"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
)

type options struct {
	migrate       bool
	users         int
	ownerRequests int
	seed          int64
	adminUser     string
	adminPassword string
}

func main() {
	var opts options
	flag.BoolVar(&opts.migrate, "migrate", false, "apply the schema before seeding")
	flag.IntVar(&opts.users, "users", 10, "number of fake users")
	flag.IntVar(&opts.ownerRequests, "owner-requests", 5, "number of fake owner requests")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	flag.StringVar(&opts.adminUser, "admin-user", "admin", "staff username")
	flag.StringVar(&opts.adminPassword, "admin-password", "admin123", "staff password")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env", "error", err.Error())
	}

	if err := run(context.Background(), opts); err != nil {
		slog.Error("seed failed", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("seed finished")
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.migrate {
		if err := migrations.Apply(ctx, pool); err != nil {
			return err
		}
	}

	s := &seeder{
		uow:    uow.NewPostgresUoW(pool),
		hasher: password.NewDefaultHasher(),
		faker:  gofakeit.New(opts.seed),
		now:    time.Now(),
	}
	return s.run(ctx, opts)
}

type seeder struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
	faker  *gofakeit.Faker
	now    time.Time
}

func (s *seeder) run(ctx context.Context, opts options) error {
	adminID, err := s.createUser(ctx, opts.adminUser, opts.adminPassword, user.RoleAdmin, true)
	if err != nil {
		return fmt.Errorf("create staff user: %w", err)
	}
	slog.Info("staff user ready", "username", opts.adminUser, "id", adminID)

	var userIDs []int64
	for i := 0; i < opts.users; i++ {
		role := user.RoleComum
		if i%3 == 0 {
			role = user.RoleAssociado
		}
		id, err := s.createUser(ctx, s.username(), "senha123", role, false)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	var quadraIDs []int64
	for _, donoID := range append([]int64{adminID}, userIDs[:min(3, len(userIDs))]...) {
		id, err := s.createQuadra(ctx, donoID)
		if err != nil {
			return fmt.Errorf("create quadra: %w", err)
		}
		quadraIDs = append(quadraIDs, id)
	}

	for _, uid := range userIDs {
		qid := quadraIDs[s.faker.Number(0, len(quadraIDs)-1)]
		if _, err := s.createAgendamento(ctx, uid, qid); err != nil {
			return fmt.Errorf("create agendamento: %w", err)
		}
	}

	for i := 0; i < opts.ownerRequests && len(userIDs) > 0; i++ {
		if _, err := s.createOwnerRequest(ctx, userIDs[i%len(userIDs)]); err != nil {
			return fmt.Errorf("create owner request: %w", err)
		}
	}

	slog.Info("seed data created",
		"users", len(userIDs)+1,
		"quadras", len(quadraIDs),
		"agendamentos", len(userIDs),
		"owner_requests", min(opts.ownerRequests, len(userIDs)))
	return nil
}

func (s *seeder) username() string {
	name := strings.ToLower(s.faker.Username())
	return fmt.Sprintf("%s%d", name, s.faker.Number(10, 9999))
}

func (s *seeder) createUser(ctx context.Context, username, pass string, role user.Role, staff bool) (int64, error) {
	un, err := user.NewUsername(username)
	if err != nil {
		return 0, err
	}
	email, err := user.NewEmail(s.faker.Email())
	if err != nil {
		return 0, err
	}
	name, err := user.NewPersonName(s.faker.FirstName(), s.faker.LastName())
	if err != nil {
		return 0, err
	}
	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return 0, err
	}
	u, err := user.NewUser(un, email, name, role, hash, s.now)
	if err != nil {
		return 0, err
	}
	if staff {
		u.GrantStaff(true)
	}

	var id int64
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, u)
		return err
	})
	return id, err
}

func (s *seeder) createQuadra(ctx context.Context, donoID int64) (int64, error) {
	q, err := quadra.NewQuadra(quadra.Details{
		Nome:       "Arena " + s.faker.LastName(),
		Endereco:   s.faker.Street() + ", " + s.faker.City(),
		Descricao:  s.faker.Sentence(12),
		Tipo:       s.faker.RandomString([]string{"Society", "Futsal", "Campo", "Areia"}),
		Capacidade: ptr.To(int32(s.faker.Number(10, 40))),
	}, donoID)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Quadras().Create(ctx, q)
		return err
	})
	return id, err
}

func (s *seeder) createAgendamento(ctx context.Context, usuarioID, quadraID int64) (int64, error) {
	day := agendamento.DateFromTime(s.now.AddDate(0, 0, s.faker.Number(1, 30)))
	hora, err := agendamento.ParseHora(fmt.Sprintf("%02d:00", s.faker.Number(8, 22)))
	if err != nil {
		return 0, err
	}
	slot, err := agendamento.NewSlot(day, hora, ptr.To(int32(s.faker.RandomInt([]int{60, 90, 120}))))
	if err != nil {
		return 0, err
	}
	payment, err := agendamento.NewPayment(s.faker.RandomString([]string{"pix", "cartao", "dinheiro"}), nil)
	if err != nil {
		return 0, err
	}
	a, err := agendamento.NewAgendamento(usuarioID, quadraID, slot, payment, s.now)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Agendamentos().Create(ctx, a)
		return err
	})
	return id, err
}

func (s *seeder) createOwnerRequest(ctx context.Context, userID int64) (int64, error) {
	var subVenues []*ownerrequest.SubVenue
	for i := 0; i < s.faker.Number(1, 3); i++ {
		replaced := s.now.AddDate(-s.faker.Number(0, 4), -s.faker.Number(0, 11), 0)
		sv, err := ownerrequest.NewSubVenue(ownerrequest.SubVenueInput{
			Nome:       fmt.Sprintf("Quadra %d", i+1),
			Tipo:       s.faker.RandomString([]string{"Society", "Futsal"}),
			Capacidade: ptr.To(int32(s.faker.Number(10, 22))),
			Turf: ownerrequest.TurfSpec{
				SurfaceType:            ownerrequest.SurfaceSynthetic,
				PileHeightMM:           ptr.To(int32(s.faker.Number(20, 60))),
				InfillType:             s.faker.RandomString([]string{"borracha", "areia", "misto"}),
				InfillDepthMM:          ptr.To(int32(s.faker.Number(5, 30))),
				ShockpadPresent:        s.faker.Bool(),
				LastReplacementDate:    &replaced,
				MaintenanceFrequency:   s.faker.RandomString([]string{"semanal", "quinzenal", "mensal"}),
				SurfaceConditionRating: ptr.To(int32(s.faker.Number(1, 10))),
			},
			Notes: s.faker.Sentence(8),
		})
		if err != nil {
			return 0, err
		}
		subVenues = append(subVenues, sv)
	}

	r, err := ownerrequest.NewOwnerRequest(userID, ownerrequest.BusinessInfo{
		Name:         s.faker.Company(),
		Address:      s.faker.Street() + ", " + s.faker.City(),
		ContactPhone: s.faker.Phone(),
		ContactEmail: s.faker.Email(),
		Description:  s.faker.Sentence(15),
	}, subVenues, s.now)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, _, err = tx.OwnerRequests().Create(ctx, r)
		return err
	})
	return id, err
}

package infra

import (
	"context"

	"github.com/Fenn3kk/smpp-backend/internal/config"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the domain lookup tables and the default administrator on
// first boot. Each table is only filled when empty, so restarting against an
// existing database is a no-op and manual additions survive.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := seedLookup(ctx, repository.NewLookupRepository[model.Atividade](db),
		func(nome string) model.Atividade { return model.Atividade{Nome: nome} },
		[]string{
			"Criação de bovinos", "Criação de búfalos", "Criação de equinos",
			"Criação de asininos", "Criação de muares", "Criação de suínos",
			"Criação de caprinos", "Criação de ovinos", "Criação de galinhas e similares",
			"Criação de codornas", "Criação de outras aves", "Criação de coelhos",
			"Criação de abelhas", "Criação de peixes, camarões e moluscos",
			"Criação de rãs", "Criação de bicho-da-seda", "Pesca", "Lavoura Temporária",
			"Lavoura Permanente", "Horticultura", "Extração Vegetal", "Floricultura",
			"Silvicultura e seus produtos", "Agroindústria Vegetal", "Agroindústria Animal",
			"Atividade de turismo rural", "Exploração mineral", "Atividades não agrícolas",
		}); err != nil {
		return err
	}

	if err := seedLookup(ctx, repository.NewLookupRepository[model.Vulnerabilidade](db),
		func(nome string) model.Vulnerabilidade { return model.Vulnerabilidade{Nome: nome} },
		[]string{
			"Área sujeitas a deslizamentos", "Área sujeitas a alagamento",
			"Área sujeita a secas", "Acesso por pontes sujeitas a inundações",
			"Acesso por estradas sujeitas a inundações",
		}); err != nil {
		return err
	}

	if err := seedLookup(ctx, repository.NewLookupRepository[model.Cidade](db),
		func(nome string) model.Cidade { return model.Cidade{Nome: nome} },
		[]string{
			"Agudo", "Cacequi", "Cachoeira do Sul", "Capão do Cipó", "Cerro Branco",
			"Dilermando de Aguiar", "Dona Francisca", "Faxinal do Soturno", "Itaara",
			"Ivorá", "Jaguari", "Júlio de Castilhos", "Mata", "Nova Esperança do Sul",
			"Nova Palma", "Novo Cabrais", "Paraíso do Sul", "Santa Maria", "Santiago",
			"São Francisco de Assis", "São João do Polêsine", "São Martinho da Serra",
			"São Sepé", "São Vicente do Sul", "Silveira Martins", "Unistalda",
		}); err != nil {
		return err
	}

	if err := seedLookup(ctx, repository.NewLookupRepository[model.Incidente](db),
		func(nome string) model.Incidente { return model.Incidente{Nome: nome} },
		[]string{
			"Perda de animais", "Perda de equipamentos", "Perda de fertilizantes",
			"Perda de lavoura", "Dano estrutural",
		}); err != nil {
		return err
	}

	if err := seedLookup(ctx, repository.NewLookupRepository[model.TipoOcorrencia](db),
		func(nome string) model.TipoOcorrencia { return model.TipoOcorrencia{Nome: nome} },
		[]string{"Alagamento", "Seca", "Tempestade", "Queimada"}); err != nil {
		return err
	}

	return seedAdmin(ctx, repository.NewUsuarioRepository(db), cfg)
}

func seedLookup[T repository.LookupEntity](
	ctx context.Context,
	repo repository.LookupRepository[T],
	novo func(nome string) T,
	nomes []string,
) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, nome := range nomes {
		e := novo(nome)
		if err := repo.Create(ctx, &e); err != nil {
			return err
		}
	}
	log.Info().Int("registros", len(nomes)).Msg("tabela de domínio populada")
	return nil
}

// seedAdmin creates the default administrator only when no user exists at all.
func seedAdmin(ctx context.Context, usuarios repository.UsuarioRepository, cfg *config.Config) error {
	count, err := usuarios.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.Usuario{
		Nome:        "ADMINISTRADOR",
		Email:       cfg.AdminEmail,
		Telefone:    "00000000000",
		Senha:       string(hash),
		TipoUsuario: model.TipoAdmin,
	}
	if err := usuarios.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("usuário administrador criado")
	return nil
}

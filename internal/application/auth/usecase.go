package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
	"github.com/guaianases/oficina-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminConfig credenciais do ADMEC vindas da configuração. O hash é bcrypt;
// o esquema base64 reversível do sistema antigo não é reproduzido.
type AdminConfig struct {
	Username     string
	Email        string
	PasswordHash string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	clientRepo   repository.ClientRepository
	mechanicRepo repository.MechanicRepository
	notifRepo    repository.NotificationRepository
	jwtCfg       JWTConfig
	adminCfg     AdminConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(
	clientRepo repository.ClientRepository,
	mechanicRepo repository.MechanicRepository,
	notifRepo repository.NotificationRepository,
	jwtCfg JWTConfig,
	adminCfg AdminConfig,
) *AuthUseCase {
	return &AuthUseCase{
		clientRepo:   clientRepo,
		mechanicRepo: mechanicRepo,
		notifRepo:    notifRepo,
		jwtCfg:       jwtCfg,
		adminCfg:     adminCfg,
	}
}

// emailInUse verifica o email nas duas tabelas (clients e mechanics).
func (uc *AuthUseCase) emailInUse(email string) bool {
	if c, _ := uc.clientRepo.GetByEmail(email); c != nil {
		return true
	}
	if m, _ := uc.mechanicRepo.GetByEmail(email); m != nil {
		return true
	}
	return false
}

// RegisterClient cria um cliente com aprovação automática e já devolve o
// token de sessão.
func (uc *AuthUseCase) RegisterClient(in dto.RegisterClientRequest) (*dto.LoginResponse, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.emailInUse(in.Email) {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	client := &entity.Client{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return uc.loginResponse(jwt.Identity{
		UserID:   client.ID,
		FullName: client.FullName,
		Type:     entity.TypeClient,
	}, client.Email)
}

// RegisterMechanic cria um mecânico pendente de aprovação e notifica o
// ADMEC. O mecânico consegue logar, mas sem privilégio algum até aprovado.
func (uc *AuthUseCase) RegisterMechanic(in dto.RegisterMechanicRequest) (*dto.RegisterMechanicResponse, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.emailInUse(in.Email) {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	mechanic := &entity.Mechanic{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Position:     entity.PositionColaborador,
		Approved:     false,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.mechanicRepo.Create(mechanic); err != nil {
		return nil, err
	}
	// Notificação para o ADMEC; falha aqui não desfaz o cadastro.
	_ = uc.notifRepo.Insert(&entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationMechanicRegistration,
		Message:   fmt.Sprintf("Novo mecânico solicitou registro: %s (%s)", in.FullName, in.Email),
		IsRead:    false,
		CreatedAt: time.Now(),
	})
	return &dto.RegisterMechanicResponse{
		Message: "Registro enviado! Aguarde aprovação do ADMEC para fazer login.",
	}, nil
}

// Login tenta na ordem: ADMEC, cliente, mecânico. Credenciais inválidas em
// qualquer tabela resolvem para ErrUnauthorized, sem distinguir qual campo
// falhou.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	// ADMEC aceita username ou email.
	if in.Email == uc.adminCfg.Username || in.Email == uc.adminCfg.Email {
		if uc.adminCfg.PasswordHash != "" &&
			bcrypt.CompareHashAndPassword([]byte(uc.adminCfg.PasswordHash), []byte(in.Password)) == nil {
			return uc.loginResponse(jwt.Identity{
				UserID:   "admin-1",
				FullName: uc.adminCfg.Username,
				Type:     entity.TypeAdmin,
			}, uc.adminCfg.Email)
		}
		return nil, domain.ErrUnauthorized
	}

	if client, _ := uc.clientRepo.GetByEmail(in.Email); client != nil {
		if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(in.Password)) == nil {
			if !client.IsActive {
				return nil, domain.ErrForbidden
			}
			return uc.loginResponse(jwt.Identity{
				UserID:   client.ID,
				FullName: client.FullName,
				Type:     entity.TypeClient,
			}, client.Email)
		}
		return nil, domain.ErrUnauthorized
	}

	if mechanic, _ := uc.mechanicRepo.GetByEmail(in.Email); mechanic != nil {
		if bcrypt.CompareHashAndPassword([]byte(mechanic.PasswordHash), []byte(in.Password)) == nil {
			if !mechanic.IsActive {
				return nil, domain.ErrForbidden
			}
			return uc.loginResponse(jwt.Identity{
				UserID:   mechanic.ID,
				FullName: mechanic.FullName,
				Type:     entity.TypeMechanic,
				Position: mechanic.PositionOrDefault(),
				Approved: mechanic.Approved,
			}, mechanic.Email)
		}
	}

	return nil, domain.ErrUnauthorized
}

func (uc *AuthUseCase) loginResponse(id jwt.Identity, email string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, id, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       id.UserID,
			FullName: id.FullName,
			Email:    email,
			Type:     id.Type,
			Position: id.Position,
			Approved: id.Approved,
		},
	}, nil
}

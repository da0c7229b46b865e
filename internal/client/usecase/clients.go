package usecase

import (
	"context"
	"errors"
	"fmt"

	"banquetpro/internal/client"
	"banquetpro/internal/client/repository"
	eventRepo "banquetpro/internal/event/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
)

func (uc *implUseCase) List(ctx context.Context, input client.ListInput) (client.ListOutput, error) {
	clients, err := uc.repo.ListClients(ctx, repository.ListClientsOptions{
		Skip:  input.Skip,
		Limit: input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "client usecase: failed to list clients: %v", err)
		return client.ListOutput{}, fmt.Errorf("failed to list clients: %w", err)
	}
	return client.ListOutput{Clients: clients, Count: len(clients)}, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Client, error) {
	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Client{}, client.ErrClientNotFound
		}
		return model.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

func (uc *implUseCase) Create(ctx context.Context, input client.CreateClientInput) (model.Client, error) {
	if err := validateClient(input.Name, input.Email); err != nil {
		return model.Client{}, err
	}
	if err := uc.checkEmailFree(ctx, input.Email, 0); err != nil {
		return model.Client{}, err
	}

	c, err := uc.repo.CreateClient(ctx, repository.CreateClientOptions{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Company:     input.Company,
		IsCorporate: input.IsCorporate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "client usecase: failed to create client: %v", err)
		return model.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	uc.l.Infof(ctx, "client usecase: created client %d (%s)", c.ID, c.Email)
	return c, nil
}

func (uc *implUseCase) Update(ctx context.Context, id int64, input client.UpdateClientInput) (model.Client, error) {
	if err := validateClient(input.Name, input.Email); err != nil {
		return model.Client{}, err
	}

	current, err := uc.Get(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	if input.Email != current.Email {
		if err := uc.checkEmailFree(ctx, input.Email, id); err != nil {
			return model.Client{}, err
		}
	}

	c, err := uc.repo.UpdateClient(ctx, id, repository.UpdateClientOptions{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Company:     input.Company,
		IsCorporate: input.IsCorporate,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Client{}, client.ErrClientNotFound
		}
		uc.l.Errorf(ctx, "client usecase: failed to update client %d: %v", id, err)
		return model.Client{}, fmt.Errorf("failed to update client: %w", err)
	}
	return c, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}

	events, err := uc.events.ListEvents(ctx, eventRepo.ListEventsOptions{ClientID: id, Limit: 1})
	if err != nil {
		uc.l.Errorf(ctx, "client usecase: failed to check events for client %d: %v", id, err)
		return fmt.Errorf("failed to check client events: %w", err)
	}
	if len(events) > 0 {
		return client.ErrHasEvents
	}

	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return client.ErrClientNotFound
		}
		uc.l.Errorf(ctx, "client usecase: failed to delete client %d: %v", id, err)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	uc.l.Infof(ctx, "client usecase: deleted client %d", id)
	return nil
}

func validateClient(name, email string) error {
	if name == "" {
		return client.ErrNameRequired
	}
	if email == "" {
		return client.ErrEmailRequired
	}
	return nil
}

// checkEmailFree rejects emails held by a client other than selfID.
func (uc *implUseCase) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	matches, err := uc.repo.ListClients(ctx, repository.ListClientsOptions{Email: email})
	if err != nil {
		return fmt.Errorf("failed to check client email: %w", err)
	}
	for _, m := range matches {
		if m.Email == email && m.ID != selfID {
			return client.ErrEmailTaken
		}
	}
	return nil
}

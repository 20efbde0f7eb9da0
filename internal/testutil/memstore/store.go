package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
)

// Store bundles one repository per resource.
type Store struct {
	Users     *UserRepository
	Providers *LogisticProviderRepository
	Reviews   *ReviewRepository
	Posts     *PostRepository
	Messages  *MessageRepository

	down error
}

func New() *Store {
	c := &clock{}
	return &Store{
		Users:     &UserRepository{newTable[entity.User]("User", func(u *entity.User) *primitive.ObjectID { return &u.ID })},
		Providers: &LogisticProviderRepository{newTable[entity.LogisticProvider]("Provider", func(p *entity.LogisticProvider) *primitive.ObjectID { return &p.ID })},
		Reviews:   &ReviewRepository{newTable[entity.Review]("Review", func(r *entity.Review) *primitive.ObjectID { return &r.ID })},
		Posts:     &PostRepository{table: newTable[entity.Post]("Post", func(p *entity.Post) *primitive.ObjectID { return &p.ID }), clock: c},
		Messages:  &MessageRepository{table: newTable[entity.Message]("Message", func(m *entity.Message) *primitive.ObjectID { return &m.ID }), clock: c},
	}
}

// SetDown makes Ready report err; nil brings the store back.
func (s *Store) SetDown(err error) {
	s.down = err
}

func (s *Store) Ready(ctx context.Context) error {
	return s.down
}

// Calls sums the operations attempted across every repository.
func (s *Store) Calls() int {
	return s.Users.Calls() + s.Providers.Calls() + s.Reviews.Calls() + s.Posts.Calls() + s.Messages.Calls()
}

type UserRepository struct {
	*table[entity.User]
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.insert(user)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return r.list(nil, nil)
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return r.get(id)
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.UserUpdate) (int64, error) {
	return r.modify(id, func(u *entity.User) {
		assign(&u.Username, fields.Username)
		assign(&u.FullName, fields.FullName)
		assign(&u.Email, fields.Email)
		if fields.RegisteredDate != nil {
			u.RegisteredDate = fields.RegisteredDate
		}
	})
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.remove(id)
}

type LogisticProviderRepository struct {
	*table[entity.LogisticProvider]
}

func (r *LogisticProviderRepository) Create(ctx context.Context, provider *entity.LogisticProvider) error {
	return r.insert(provider)
}

func (r *LogisticProviderRepository) FindAll(ctx context.Context) ([]*entity.LogisticProvider, error) {
	return r.list(nil, nil)
}

func (r *LogisticProviderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.LogisticProvider, error) {
	return r.get(id)
}

func (r *LogisticProviderRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.LogisticProviderUpdate) (int64, error) {
	return r.modify(id, func(p *entity.LogisticProvider) {
		assign(&p.CompanyName, fields.CompanyName)
		assign(&p.RUC, fields.RUC)
		assign(&p.ContactEmail, fields.ContactEmail)
		assign(&p.Services, fields.Services)
	})
}

func (r *LogisticProviderRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.remove(id)
}

type ReviewRepository struct {
	*table[entity.Review]
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.insert(review)
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	return r.list(nil, nil)
}

func (r *ReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	return r.get(id)
}

func (r *ReviewRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.ReviewUpdate) (int64, error) {
	return r.modify(id, func(rv *entity.Review) {
		assign(&rv.UserID, fields.UserID)
		assign(&rv.ProviderID, fields.ProviderID)
		assign(&rv.Title, fields.Title)
		assign(&rv.Content, fields.Content)
		assign(&rv.Rating, fields.Rating)
		if fields.CreatedAt != nil {
			rv.CreatedAt = fields.CreatedAt
		}
	})
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.remove(id)
}

type PostRepository struct {
	*table[entity.Post]
	clock *clock
}

func newestPost(a, b *entity.Post) bool { return a.CreatedAt.After(b.CreatedAt) }

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.Images == nil {
		post.Images = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = r.clock.now()
	}
	return r.insert(post)
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	return r.list(nil, newestPost)
}

func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	return r.get(id)
}

func (r *PostRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	return r.list(func(p *entity.Post) bool { return p.UserID == userID }, newestPost)
}

func (r *PostRepository) FindByProviderID(ctx context.Context, providerID string) ([]*entity.Post, error) {
	return r.list(func(p *entity.Post) bool {
		return p.ProviderID != nil && *p.ProviderID == providerID
	}, newestPost)
}

func (r *PostRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.PostUpdate) (int64, error) {
	updatedAt := r.clock.now()
	return r.modify(id, func(p *entity.Post) {
		assign(&p.Title, fields.Title)
		assign(&p.Content, fields.Content)
		assign(&p.Images, fields.Images)
		assign(&p.Tags, fields.Tags)
		p.UpdatedAt = &updatedAt
	})
}

func (r *PostRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.modify(id, func(p *entity.Post) { p.Likes++ })
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.remove(id)
}

type MessageRepository struct {
	*table[entity.Message]
	clock *clock
}

func newestMessage(a, b *entity.Message) bool { return a.CreatedAt.After(b.CreatedAt) }

func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = r.clock.now()
	}
	return r.insert(message)
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]*entity.Message, error) {
	return r.list(nil, newestMessage)
}

func (r *MessageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Message, error) {
	return r.get(id)
}

func (r *MessageRepository) FindBySenderID(ctx context.Context, senderID string) ([]*entity.Message, error) {
	return r.list(func(m *entity.Message) bool { return m.SenderID == senderID }, newestMessage)
}

func (r *MessageRepository) FindByReceiverID(ctx context.Context, receiverID string) ([]*entity.Message, error) {
	return r.list(func(m *entity.Message) bool { return m.ReceiverID == receiverID }, newestMessage)
}

func (r *MessageRepository) FindConversation(ctx context.Context, conversation entity.Conversation) ([]*entity.Message, error) {
	a, b := conversation.UserA, conversation.UserB
	return r.list(func(m *entity.Message) bool {
		return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
	}, func(x, y *entity.Message) bool { return x.CreatedAt.Before(y.CreatedAt) })
}

func (r *MessageRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.MessageUpdate) (int64, error) {
	updatedAt := r.clock.now()
	return r.modify(id, func(m *entity.Message) {
		assign(&m.Subject, fields.Subject)
		assign(&m.Content, fields.Content)
		m.UpdatedAt = &updatedAt
	})
}

func (r *MessageRepository) MarkAsRead(ctx context.Context, id primitive.ObjectID) (int64, error) {
	readAt := r.clock.now()
	return r.modify(id, func(m *entity.Message) {
		m.IsRead = true
		m.ReadAt = &readAt
	})
}

func (r *MessageRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.remove(id)
}

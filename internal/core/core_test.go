package core_test

import (
	"context"
	"errors"

	"nextup/internal/core"
	"nextup/internal/core/fake"
	"nextup/internal/repository"
	tokenIssuer "nextup/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NextUp", func() {
	var (
		service    *core.NextUp
		fakeUsers  *fake.UserRepository
		fakeTodos  *fake.TodoRepository
		fakeJWT    *fake.JWTIssuer
		fakeHasher *fake.PasswordHasher
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		fakeTodos = new(fake.TodoRepository)
		fakeJWT = new(fake.JWTIssuer)
		fakeHasher = new(fake.PasswordHasher)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		service = core.NewNextUp(
			zap.NewNop().Sugar(),
			fakeUsers,
			fakeTodos,
			fakeJWT,
			fakeHasher,
			"Bearer",
		)
	})

	Describe("Register", func() {
		var (
			msg   core.RegisterMessage
			user  core.UserRecord
			token string
			err   error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "gopher",
				Email:    "gopher@example.com",
				Password: "s3cretpass",
			}
			fakeUsers.UsernameTakenReturns(false, nil)
			fakeUsers.EmailTakenReturns(false, nil)
			fakeHasher.GenerateSaltReturns("salt-123", nil)
			fakeHasher.HashReturns("hashed-pass", nil)
			fakeUsers.CreateUserStub = func(ctx context.Context, u *repository.User) error {
				u.ID = 11
				return nil
			}
			fakeUsers.CreateProfileReturns(nil)
			fakeJWT.IssueReturns("signed.token.here", nil)
		})

		JustBeforeEach(func() {
			user, token, err = service.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			It("should return the new user and a token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(11)))
				Expect(user.Username).To(Equal("gopher"))
				Expect(user.IsActive).To(BeTrue())
				Expect(token).To(Equal("signed.token.here"))
			})

			It("should store the salted password hash, never the password", func() {
				_, created := fakeUsers.CreateUserArgsForCall(0)
				Expect(created.Salt).To(Equal("salt-123"))
				Expect(created.PasswordHash).To(Equal("hashed-pass"))

				password, salt := fakeHasher.HashArgsForCall(0)
				Expect(password).To(Equal("s3cretpass"))
				Expect(salt).To(Equal("salt-123"))
			})

			It("should attach an empty profile to the new account", func() {
				Expect(fakeUsers.CreateProfileCallCount()).To(Equal(1))
				_, profile := fakeUsers.CreateProfileArgsForCall(0)
				Expect(profile.UserID).To(Equal(uint(11)))
			})

			It("should issue the token for the new identity", func() {
				info := fakeJWT.IssueArgsForCall(0)
				Expect(info).To(Equal(tokenIssuer.TokenInfo{
					Username: "gopher",
					Subject:  "11",
				}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeUsers.UsernameTakenReturns(true, nil)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(fakeUsers.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the email is registered", func() {
			BeforeEach(func() {
				fakeUsers.EmailTakenReturns(true, nil)
			})

			It("should return email taken error", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
				Expect(fakeUsers.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("creating the user fails", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("a concurrent registration takes the username first", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.ErrUserExists)
				fakeUsers.UsernameTakenReturnsOnCall(0, false, nil)
				fakeUsers.UsernameTakenReturnsOnCall(1, true, nil)
			})

			It("should still report the username conflict", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(fakeJWT.IssueCallCount()).To(Equal(0))
			})
		})

		When("a concurrent registration takes the email first", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.ErrUserExists)
			})

			It("should still report the email conflict", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
				Expect(fakeJWT.IssueCallCount()).To(Equal(0))
			})
		})

		When("issuing the token fails", func() {
			BeforeEach(func() {
				fakeJWT.IssueReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg   core.AuthMessage
			token string
			err   error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{
				Username: "gopher",
				Password: "s3cretpass",
			}
			fakeUsers.GetByUsernameReturns(repository.User{
				ID:           11,
				Username:     "gopher",
				Salt:         "salt-123",
				PasswordHash: "hashed-pass",
			}, nil)
			fakeHasher.VerifyReturns(true)
			fakeJWT.IssueReturns("signed.token.here", nil)
		})

		JustBeforeEach(func() {
			token, err = service.Authenticate(ctx, msg)
		})

		When("the credentials are correct", func() {
			It("should return a token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token.here"))

				password, salt, hash := fakeHasher.VerifyArgsForCall(0)
				Expect(password).To(Equal("s3cretpass"))
				Expect(salt).To(Equal("salt-123"))
				Expect(hash).To(Equal("hashed-pass"))
			})
		})

		When("the identifier is an email", func() {
			BeforeEach(func() {
				msg.Username = "gopher@example.com"
				fakeUsers.GetByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeUsers.GetByEmailReturns(repository.User{
					ID:           11,
					Username:     "gopher",
					Salt:         "salt-123",
					PasswordHash: "hashed-pass",
				}, nil)
			})

			It("should fall back to the email lookup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token.here"))

				_, email := fakeUsers.GetByEmailArgsForCall(0)
				Expect(email).To(Equal("gopher@example.com"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeHasher.VerifyReturns(false)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(token).To(BeEmpty())
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeUsers.GetByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeUsers.GetByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the same invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})

			It("should still burn a password verification", func() {
				Expect(fakeHasher.VerifyCallCount()).To(Equal(1))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.GetByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		var (
			header string
			user   core.UserRecord
			err    error
		)

		BeforeEach(func() {
			header = "Bearer signed.token.here"
			fakeJWT.ValidateReturns(jwt.MapClaims{"username": "gopher"}, nil)
			fakeUsers.GetByUsernameReturns(repository.User{
				ID:       11,
				Username: "gopher",
				IsActive: true,
			}, nil)
		})

		JustBeforeEach(func() {
			user, err = service.Authorize(ctx, header)
		})

		When("the token is valid", func() {
			It("should resolve the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(11)))
				Expect(user.Username).To(Equal("gopher"))

				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("signed.token.here"))
			})
		})

		When("the header is missing", func() {
			BeforeEach(func() {
				header = ""
			})

			It("should return unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the scheme is not the configured prefix", func() {
			BeforeEach(func() {
				header = "Basic signed.token.here"
			})

			It("should return unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should return unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
			})
		})

		When("the username claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "11"}, nil)
			})

			It("should return unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeUsers.GetByUsernameCallCount()).To(Equal(0))
			})
		})

		When("the token holder no longer exists", func() {
			BeforeEach(func() {
				fakeUsers.GetByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
			})
		})

		When("the account is deactivated", func() {
			BeforeEach(func() {
				fakeUsers.GetByUsernameReturns(repository.User{
					ID:       11,
					Username: "gopher",
					IsActive: false,
				}, nil)
			})

			It("should return unauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
			})
		})
	})

	Describe("CreateTodo", func() {
		var (
			caller core.UserRecord
			todo   core.TodoRecord
			err    error
		)

		BeforeEach(func() {
			caller = core.UserRecord{ID: 11, Username: "gopher"}
			fakeTodos.CreateTodoStub = func(ctx context.Context, t *repository.Todo) error {
				t.ID = 42
				return nil
			}
		})

		JustBeforeEach(func() {
			todo, err = service.CreateTodo(ctx, caller, core.CreateTodoMessage{
				Task:      "buy milk",
				Completed: false,
			})
		})

		When("the todo is created", func() {
			It("should own it by the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todo.ID).To(Equal(uint(42)))
				Expect(todo.Owner).To(Equal(uint(11)))

				_, created := fakeTodos.CreateTodoArgsForCall(0)
				Expect(created.Owner).To(Equal(uint(11)))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeTodos.CreateTodoStub = nil
				fakeTodos.CreateTodoReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTodo", func() {
		When("the todo exists", func() {
			BeforeEach(func() {
				fakeTodos.GetByIDReturns(repository.Todo{ID: 42, Task: "buy milk", Owner: 11}, nil)
			})

			It("should return the record", func() {
				todo, err := service.GetTodo(ctx, 42)
				Expect(err).NotTo(HaveOccurred())
				Expect(todo.ID).To(Equal(uint(42)))
				Expect(todo.Owner).To(Equal(uint(11)))
			})
		})

		When("the todo doesn't exist", func() {
			BeforeEach(func() {
				fakeTodos.GetByIDReturns(repository.Todo{}, repository.ErrTodoNotFound)
			})

			It("should return todo not found error", func() {
				_, err := service.GetTodo(ctx, 42)
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})
		})
	})

	Describe("ListTodos", func() {
		BeforeEach(func() {
			fakeTodos.ListAllReturns([]repository.Todo{
				{ID: 1, Task: "buy milk", Completed: true, Owner: 11},
				{ID: 2, Task: "walk dog", Owner: 22},
			}, nil)
		})

		It("should return summaries without owner details", func() {
			summaries, err := service.ListTodos(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summaries).To(Equal([]core.TodoSummary{
				{ID: 1, Task: "buy milk", Completed: true},
				{ID: 2, Task: "walk dog", Completed: false},
			}))
		})
	})

	Describe("ListMyTodos", func() {
		BeforeEach(func() {
			fakeTodos.ListByOwnerReturns([]repository.Todo{
				{ID: 1, Task: "buy milk", Owner: 11},
			}, nil)
		})

		It("should list only the caller's todos", func() {
			records, err := service.ListMyTodos(ctx, core.UserRecord{ID: 11})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Owner).To(Equal(uint(11)))

			_, owner := fakeTodos.ListByOwnerArgsForCall(0)
			Expect(owner).To(Equal(uint(11)))
		})
	})

	Describe("UpdateTodo", func() {
		var (
			caller    core.UserRecord
			patch     core.TodoPatch
			todo      core.TodoRecord
			err       error
			completed bool
		)

		BeforeEach(func() {
			caller = core.UserRecord{ID: 11}
			completed = true
			patch = core.TodoPatch{Completed: &completed}

			fakeTodos.GetByIDReturnsOnCall(0, repository.Todo{ID: 42, Task: "buy milk", Owner: 11}, nil)
			fakeTodos.GetByIDReturnsOnCall(1, repository.Todo{ID: 42, Task: "buy milk", Completed: true, Owner: 11}, nil)
			fakeTodos.UpdateOwnedReturns(1, nil)
		})

		JustBeforeEach(func() {
			todo, err = service.UpdateTodo(ctx, 42, patch, caller)
		})

		When("the caller owns the todo", func() {
			It("should apply the patch and return the updated record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todo.Completed).To(BeTrue())

				_, id, owner, updates := fakeTodos.UpdateOwnedArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
				Expect(owner).To(Equal(uint(11)))
				Expect(updates).To(Equal(map[string]any{"completed": true}))
			})
		})

		When("the patch is empty", func() {
			BeforeEach(func() {
				patch = core.TodoPatch{}
			})

			It("should return the stored record untouched", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todo.ID).To(Equal(uint(42)))
				Expect(fakeTodos.UpdateOwnedCallCount()).To(Equal(0))
			})
		})

		When("another user owns the todo", func() {
			BeforeEach(func() {
				fakeTodos.GetByIDReturnsOnCall(0, repository.Todo{ID: 42, Owner: 99}, nil)
			})

			It("should return not owner error", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeTodos.UpdateOwnedCallCount()).To(Equal(0))
			})
		})

		When("the todo doesn't exist", func() {
			BeforeEach(func() {
				fakeTodos.GetByIDReturnsOnCall(0, repository.Todo{}, repository.ErrTodoNotFound)
			})

			It("should return todo not found error", func() {
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})
		})

		When("the todo disappears between the check and the write", func() {
			BeforeEach(func() {
				fakeTodos.UpdateOwnedReturns(0, nil)
			})

			It("should return todo not found error", func() {
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})
		})
	})

	Describe("DeleteTodo", func() {
		var (
			caller    core.UserRecord
			deletedID uint
			err       error
		)

		BeforeEach(func() {
			caller = core.UserRecord{ID: 11}
			fakeTodos.GetByIDReturns(repository.Todo{ID: 42, Owner: 11}, nil)
			fakeTodos.DeleteOwnedReturns(1, nil)
		})

		JustBeforeEach(func() {
			deletedID, err = service.DeleteTodo(ctx, 42, caller)
		})

		When("the caller owns the todo", func() {
			It("should delete it and return its id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deletedID).To(Equal(uint(42)))

				_, id, owner := fakeTodos.DeleteOwnedArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
				Expect(owner).To(Equal(uint(11)))
			})
		})

		When("another user owns the todo", func() {
			BeforeEach(func() {
				fakeTodos.GetByIDReturns(repository.Todo{ID: 42, Owner: 99}, nil)
			})

			It("should return not owner error", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeTodos.DeleteOwnedCallCount()).To(Equal(0))
			})
		})

		When("the todo doesn't exist", func() {
			BeforeEach(func() {
				fakeTodos.GetByIDReturns(repository.Todo{}, repository.ErrTodoNotFound)
			})

			It("should return todo not found error", func() {
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})
		})

		When("the todo was already deleted concurrently", func() {
			BeforeEach(func() {
				fakeTodos.DeleteOwnedReturns(0, nil)
			})

			It("should return todo not found error", func() {
				Expect(err).To(MatchError(core.ErrTodoNotFound))
			})
		})
	})
})

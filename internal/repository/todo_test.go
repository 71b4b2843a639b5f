package repository_test

import (
	"context"
	"errors"

	"nextup/internal/db"
	"nextup/internal/repository"
	"nextup/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TodoRepository", func() {
	var (
		repo        *repository.TodoRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTodoRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate the todos table", func() {
			fakeStorage.MigrateTableReturns(nil)

			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(1))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Todo{}))
		})
	})

	Describe("CreateTodo", func() {
		var (
			todo repository.Todo
			err  error
		)

		BeforeEach(func() {
			todo = repository.Todo{
				Task:      "buy milk",
				Completed: false,
				Owner:     7,
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateTodo(ctx, &todo)
		})

		When("create succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(nil)
			})

			It("should persist the todo", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateRecordArgsForCall(0)
				Expect(record).To(Equal(&todo))
			})
		})

		When("create fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetByID", func() {
		var (
			todo repository.Todo
			err  error
		)

		JustBeforeEach(func() {
			todo, err = repo.GetByID(ctx, 42)
		})

		When("the todo exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					t := dest.(*repository.Todo)
					*t = repository.Todo{ID: 42, Task: "buy milk", Owner: 7}
					return nil
				}
			})

			It("should return the todo", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todo.ID).To(Equal(uint(42)))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(42)))
			})
		})

		When("the todo doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return todo not found error", func() {
				Expect(err).To(MatchError(repository.ErrTodoNotFound))
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListAll", func() {
		var (
			todos []repository.Todo
			err   error
		)

		JustBeforeEach(func() {
			todos, err = repo.ListAll(ctx)
		})

		When("todos exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(ctx context.Context, dest any) error {
					ts := dest.(*[]repository.Todo)
					*ts = []repository.Todo{
						{ID: 1, Task: "buy milk"},
						{ID: 2, Task: "walk dog"},
					}
					return nil
				}
			})

			It("should return all todos", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).To(HaveLen(2))
			})
		})

		When("no todos exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(nil)
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).To(BeEmpty())
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListByOwner", func() {
		It("should filter on the owner column", func() {
			fakeStorage.GetAllByReturns(nil)

			_, err := repo.ListByOwner(ctx, 7)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
			_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(col).To(Equal("owner"))
			Expect(val).To(Equal(uint(7)))
		})
	})

	Describe("UpdateOwned", func() {
		var (
			rows    int64
			err     error
			updates map[string]any
		)

		BeforeEach(func() {
			updates = map[string]any{"completed": true}
		})

		JustBeforeEach(func() {
			rows, err = repo.UpdateOwned(ctx, 42, 7, updates)
		})

		When("the conditional update matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should key the update on id and owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
				_, model, conds, upd := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Todo{}))
				Expect(conds).To(Equal(map[string]any{"id": uint(42), "owner": uint(7)}))
				Expect(upd).To(Equal(updates))
			})
		})

		When("the conditional update matches no rows", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should report zero rows without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteOwned", func() {
		var (
			rows int64
			err  error
		)

		JustBeforeEach(func() {
			rows, err = repo.DeleteOwned(ctx, 42, 7)
		})

		When("the conditional delete matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should key the delete on id and owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))

				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
				_, model, conds := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Todo{}))
				Expect(conds).To(Equal(map[string]any{"id": uint(42), "owner": uint(7)}))
			})
		})

		When("the todo is already gone", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should report zero rows without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})

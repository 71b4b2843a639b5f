package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"nextup/internal/core"
	"nextup/internal/http/handler"
	"nextup/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TodoHandler users", func() {
	var (
		th            *handler.TodoHandler
		fakeService   *fake.TodoService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		testUser      core.UserRecord
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		testUser = core.UserRecord{
			ID:       11,
			Username: "gopher",
			Email:    "gopher@example.com",
			IsActive: true,
		}
		fakeService = new(fake.TodoService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		th = handler.NewTodoHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"gopher","email":"gopher@example.com","password":"s3cretpass"}`)
			req = httptest.NewRequest("POST", "/users/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RegisterReturns(testUser, testToken, nil)
		})

		JustBeforeEach(func() {
			th.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with the user and a token", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var response struct {
					User        core.UserRecord `json:"user"`
					AccessToken string          `json:"access_token"`
				}
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.User.Username).To(Equal("gopher"))
				Expect(response.AccessToken).To(Equal(testToken))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg.Username).To(Equal("gopher"))
				Expect(msg.Password).To(Equal("s3cretpass"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, "", core.ErrUsernameTaken)
			})

			It("should return 400 naming the conflict", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUsernameTaken.Error()))
			})
		})

		When("the email is registered", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, "", core.ErrEmailTaken)
			})

			It("should return 400 naming the conflict", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrEmailTaken.Error()))
			})
		})

		When("registration fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, "", fakeErr)
			})

			It("should return 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"gopher","password":"s3cretpass"}`)
			req = httptest.NewRequest("POST", "/users/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.AuthenticateReturns(testToken, nil)
		})

		JustBeforeEach(func() {
			th.HandleLogin(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))

				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the credentials are incorrect", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrInvalidCredentials)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInvalidCredentials.Error()))
			})
		})
	})

	Describe("HandleGetCurrentUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/users/me", nil)
			req.Header.Set("Authorization", "Bearer "+testToken)

			fakeService.AuthorizeReturns(testUser, nil)
		})

		JustBeforeEach(func() {
			th.HandleGetCurrentUser(w, req)
		})

		When("the caller is authenticated", func() {
			It("should return the caller's record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response core.UserRecord
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.ID).To(Equal(uint(11)))
				Expect(response.Username).To(Equal("gopher"))

				_, header := fakeService.AuthorizeArgsForCall(0)
				Expect(header).To(Equal("Bearer " + testToken))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeService.AuthorizeReturns(core.UserRecord{}, core.ErrUnauthenticated)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUnauthenticated.Error()))
			})
		})
	})
})

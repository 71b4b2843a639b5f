package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"nextup/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	var decoder payload.Decoder

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	Describe("RegisterRequest", func() {
		var req payload.RegisterRequest

		BeforeEach(func() {
			req = payload.RegisterRequest{}
		})

		It("should accept a well-formed registration", func() {
			body := `{"username":"gopher","email":"gopher@example.com","password":"s3cretpass"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Username).To(Equal("gopher"))
		})

		It("should reject unknown fields", func() {
			body := `{"username":"gopher","email":"gopher@example.com","password":"s3cretpass","is_superuser":true}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decoding json payload"))
		})

		It("should reject a short username", func() {
			body := `{"username":"ab","email":"gopher@example.com","password":"s3cretpass"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("username"))
		})

		It("should reject a username with spaces", func() {
			body := `{"username":"go pher","email":"gopher@example.com","password":"s3cretpass"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("username"))
		})

		It("should reject a malformed email", func() {
			body := `{"username":"gopher","email":"not-an-email","password":"s3cretpass"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("email"))
		})

		It("should reject a short password", func() {
			body := `{"username":"gopher","email":"gopher@example.com","password":"short"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("password"))
		})

		It("should reject missing fields", func() {
			body := `{"username":"gopher"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("LoginRequest", func() {
		var req payload.LoginRequest

		BeforeEach(func() {
			req = payload.LoginRequest{}
		})

		It("should accept a username identifier", func() {
			body := `{"username":"gopher","password":"s3cretpass"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should accept an email identifier", func() {
			body := `{"username":"gopher@example.com","password":"s3cretpass"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an empty password", func() {
			body := `{"username":"gopher","password":""}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("password"))
		})
	})

	Describe("NewTodoRequest", func() {
		var req payload.NewTodoRequest

		BeforeEach(func() {
			req = payload.NewTodoRequest{}
		})

		It("should accept a complete todo", func() {
			body := `{"task":"buy milk","completed":false}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).NotTo(HaveOccurred())

			msg := req.ToMessage()
			Expect(msg.Task).To(Equal("buy milk"))
			Expect(msg.Completed).To(BeFalse())
		})

		It("should reject an absent completed flag", func() {
			body := `{"task":"buy milk"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("completed"))
		})

		It("should reject an explicit null completed flag", func() {
			body := `{"task":"buy milk","completed":null}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("completed"))
		})

		It("should reject an empty task", func() {
			body := `{"task":"","completed":true}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("task"))
		})

		It("should reject a completed flag of the wrong type", func() {
			body := `{"task":"buy milk","completed":"yes"}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decoding json payload"))
		})
	})

	Describe("UpdateTodoRequest", func() {
		var req payload.UpdateTodoRequest

		BeforeEach(func() {
			req = payload.UpdateTodoRequest{}
		})

		It("should accept a partial patch", func() {
			body := `{"completed":true}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).NotTo(HaveOccurred())

			patch := req.ToPatch()
			Expect(patch.Task).To(BeNil())
			Expect(*patch.Completed).To(BeTrue())
		})

		It("should accept an empty patch", func() {
			body := `{}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).NotTo(HaveOccurred())

			patch := req.ToPatch()
			Expect(patch.Task).To(BeNil())
			Expect(patch.Completed).To(BeNil())
		})

		It("should reject an empty task", func() {
			body := `{"task":""}`
			err := decoder.DecodeJSONPayload(newRequest(body), &req)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("task"))
		})
	})
})

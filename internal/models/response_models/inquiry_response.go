package response_models

type InquiryResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}

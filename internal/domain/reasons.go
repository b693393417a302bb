package domain

// reasonTranslations maps platform disconnection codes to Spanish labels.
var reasonTranslations = map[string]string{
	"user_hangup":                          "El usuario colgó",
	"agent_hangup":                         "El agente colgó",
	"call_transfer":                        "Llamada transferida a otro destino",
	"voicemail_reached":                    "Se llegó al buzón de voz",
	"inactivity":                           "Llamada finalizada por inactividad",
	"max_duration_reached":                 "Tiempo máximo de llamada alcanzado",
	"concurrency_limit_reached":            "Límite de llamadas simultáneas alcanzado",
	"no_valid_payment":                     "Llamada cancelada por falta de pago válido",
	"scam_detected":                        "Llamada finalizada por detección de posible estafa",
	"dial_busy":                            "El número estaba ocupado",
	"dial_failed":                          "Error al intentar marcar el número",
	"dial_no_answer":                       "El número no respondió",
	"invalid_destination":                  "Destino inválido",
	"telephony_provider_permission_denied": "Permiso denegado por el proveedor de telefonía",
	"telephony_provider_unavailable":       "Proveedor de telefonía no disponible",
	"sip_routing_error":                    "Error de enrutamiento SIP",
	"marked_as_spam":                       "Llamada marcada como spam",
	"user_declined":                        "El usuario rechazó la llamada",
	"error_llm_websocket_open":             "Error al abrir la conexión WebSocket del modelo IA",
	"error_llm_websocket_lost_connection":  "Conexión WebSocket con el modelo IA perdida",
	"error_llm_websocket_runtime":          "Error de ejecución en WebSocket del modelo IA",
	"error_llm_websocket_corrupt_payload":  "Paquete de datos corrupto en WebSocket del modelo IA",
	"error_no_audio_received":              "No se recibió audio durante la llamada",
	"error_asr":                            "Error en el reconocimiento de voz (ASR)",
	"error_retell":                         "Error interno del sistema Retell",
	"error_unknown":                        "Error desconocido",
	"error_user_not_joined":                "El usuario no se unió a la llamada",
	"registered_call_timeout":              "Tiempo de espera agotado al registrar la llamada",
	"timeout":                              "Tiempo agotado",
	"network_error":                        "Error de red",
	"busy":                                 "Ocupado",
	"no_answer":                            "Sin respuesta",
	"rejected":                             "Rechazada",
	"completed":                            "Completada",
	"unknown":                              "Desconocido",
}

// TranslateReason returns the Spanish label for a disconnection code.
// ok is false for unrecognized codes, which callers leave untouched.
func TranslateReason(code string) (label string, ok bool) {
	label, ok = reasonTranslations[code]
	return label, ok
}

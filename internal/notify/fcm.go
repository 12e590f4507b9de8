package notify

import (
	"context"

	"klinik-backend/pkg/logger"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// Notifier membungkus Firebase Cloud Messaging.
// Kalau kredensial tidak dikonfigurasi, notifier tetap dibuat tapi diam —
// gagal kirim notifikasi tidak boleh menggagalkan request utama.
type Notifier struct {
	client *messaging.Client
	log    *logger.Logger
}

// New menginisialisasi koneksi ke Firebase dari file service account.
// Path kosong atau init gagal: notifier jalan dalam mode nonaktif.
func New(credentialsPath string, log *logger.Logger) *Notifier {
	if credentialsPath == "" {
		log.Info("FCM tidak dikonfigurasi, push notification dimatikan")
		return &Notifier{log: log}
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.WithError(err).Warn("Gagal inisialisasi Firebase, push notification dimatikan")
		return &Notifier{log: log}
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.WithError(err).Warn("Gagal ambil messaging client, push notification dimatikan")
		return &Notifier{log: log}
	}

	log.Info("Firebase Cloud Messaging siap")
	return &Notifier{client: client, log: log}
}

// Send mengirim pesan ke satu device (FCM token).
// Error cuma dicatat di log, tidak dikembalikan ke caller.
func (n *Notifier) Send(ctx context.Context, token, title, body string, data map[string]string) {
	if n == nil || n.client == nil || token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := n.client.Send(ctx, message); err != nil {
		n.log.WithError(err).Warn("Gagal kirim notifikasi FCM")
		return
	}

	n.log.Debug("Notifikasi FCM terkirim")
}

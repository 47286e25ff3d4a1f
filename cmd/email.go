/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rilchief/afrostats/internal/analysis"
	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
	"github.com/rilchief/afrostats/internal/render"
)

type SendEmailConfig struct {
	To             string
	From           string
	Country        string
	DryRun         bool
	SendgridAPIKey string
}

var emailFilters *filterFlags

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails the dashboard as an HTML report",
	Long: `Renders the filtered dashboard as an HTML document and sends it to the
given address via SendGrid.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("dryRun") && viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		config := SendEmailConfig{
			To:             args[0],
			From:           viper.GetString("from"),
			Country:        viper.GetString("country"),
			DryRun:         viper.GetBool("dryRun"),
			SendgridAPIKey: viper.GetString("sendgrid_api_key"),
		}
		err := sendEmail(config, emailFilters)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)
	emailFilters = addFilterFlags(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func sendEmail(config SendEmailConfig, flags *filterFlags) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}
	state, err := flags.buildState(d)
	if err != nil {
		return err
	}

	subject, htmlBody, textBody, err := generateEmailContent(d, state, config.Country)
	if err != nil {
		return err
	}

	if config.DryRun {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, htmlBody)
		return nil
	}

	if config.SendgridAPIKey == "" {
		return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
	}

	from := mail.NewEmail("afrostats", config.From)
	to := mail.NewEmail(config.To, config.To)
	message := mail.NewSingleEmail(from, subject, to, textBody, htmlBody)
	client := sendgrid.NewSendClient(config.SendgridAPIKey)
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	fmt.Printf("Sent report to %s\n", config.To)
	return nil
}

func generateEmailContent(d *dataset.Dataset, state *filter.State, country string) (subject, htmlBody, textBody string, err error) {
	playlists := filter.FilterPlaylists(d, state)
	tracks := filter.FlattenTracks(playlists)
	view := render.BuildView(playlists, tracks, country)
	health := analysis.Health(d)

	htmlBody = render.WriteHTML(view, health)

	var text bytes.Buffer
	if err := render.WriteText(&text, view); err != nil {
		return "", "", "", fmt.Errorf("rendering text body: %w", err)
	}
	textBody = text.String()

	subject = fmt.Sprintf("Afrobeats playlist report %s", time.Now().Format("2006-01-02"))
	return subject, htmlBody, textBody, nil
}

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
	"fmt"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damie/spotify-insights/internal/dataset"
)

var emailDryRun bool

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails the listening report",
	Long: `Sends the output of the 'report' command to the given address via
SendGrid. With --dry_run, prints the email instead of sending it.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		if !emailDryRun && viper.GetString("sendgrid_api_key") == "" {
			return fmt.Errorf("required flag(s) \"sendgrid_api_key\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := sendReportEmail(ds, viper.GetString("from"), args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var from string
	emailCmd.Flags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", emailCmd.Flags().Lookup("from"))

	var sendgridAPIKey string
	emailCmd.Flags().StringVar(&sendgridAPIKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", emailCmd.Flags().Lookup("sendgrid_api_key"))

	emailCmd.Flags().BoolVar(&emailDryRun, "dry_run", false, "Print the email instead of sending it")
}

func sendReportEmail(ds dataset.Dataset, fromAddress string, toAddress string) error {
	var body strings.Builder
	if err := printReport(&body, ds); err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	subject := "Your Spotify listening report"
	if emailDryRun {
		fmt.Printf("To: %s\nFrom: %s\nSubject: %s\n\n%s", toAddress, fromAddress, subject, body.String())
		return nil
	}

	from := mail.NewEmail("spotify-insights", fromAddress)
	to := mail.NewEmail(toAddress, toAddress)
	message := mail.NewSingleEmail(from, subject, to, body.String(), "<pre>"+body.String()+"</pre>")
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendEmail: status %d: %s", response.StatusCode, response.Body)
	}

	fmt.Printf("Sent report to %s\n", toAddress)
	return nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ujwal-s-r/system-design/internal/app"
	"github.com/ujwal-s-r/system-design/internal/domain/messages"
	"github.com/ujwal-s-r/system-design/internal/infrastructure/cryptography"
	"github.com/ujwal-s-r/system-design/internal/pkg/config"
	"github.com/ujwal-s-r/system-design/internal/pkg/logger"
)

// MulConventionFlag names the persistent flag selecting how a zero word is
// read by the multiplication.
const MulConventionFlag = "mul-convention"

// IDEACommandHandler encapsulates logic for handling IDEA operations via CLI.
type IDEACommandHandler struct {
	logger logger.Logger
}

// NewIDEACommandHandler initializes and returns an IDEACommandHandler instance with
// a configured logger.
func NewIDEACommandHandler() (*IDEACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &IDEACommandHandler{logger: loggerInstance}, nil
}

// service builds the message service for the convention selected on cmd.
// One CLI invocation handles one block, so schedules are not cached.
func (commandHandler *IDEACommandHandler) service(cmd *cobra.Command) (messages.MessageCipherService, error) {
	convention, err := cmd.Flags().GetString(MulConventionFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", MulConventionFlag, err)
	}

	settings := config.CipherSettings{MulConvention: strings.ToLower(convention)}
	processor, err := cryptography.NewIDEAProcessor(&settings, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	return app.NewMessageCipherService(processor, commandHandler.logger)
}

// GenerateIDEAKeyCmd prints a random 128-bit key and, when --key-dir is set,
// stores it in <uuid>-idea-key.txt inside that directory.
func (commandHandler *IDEACommandHandler) GenerateIDEAKeyCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return err
	}

	material, err := service.GenerateKey(cmd.Context())
	if err != nil {
		return err
	}

	if keyDir != "" {
		keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-idea-key.txt", material.ID))
		if err := os.WriteFile(keyFilePath, []byte(material.Key+"\n"), 0600); err != nil {
			return fmt.Errorf("failed to write key file: %w", err)
		}
		commandHandler.logger.Info("IDEA key saved to ", keyFilePath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "key: %s\n", material.Key)
	return nil
}

// EncryptIDEACmd encrypts an eight-byte message, generating a key unless one is given.
func (commandHandler *IDEACommandHandler) EncryptIDEACmd(cmd *cobra.Command, _ []string) error {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	key, err := readKey(cmd)
	if err != nil {
		return err
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return err
	}

	encrypted, err := service.EncryptMessage(cmd.Context(), message, key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ciphertext: %s\n", encrypted.Ciphertext)
	fmt.Fprintf(out, "key: %s\n", encrypted.Key)
	fmt.Fprintf(out, "changed bits: %d\n", encrypted.ChangedBits)
	return nil
}

// DecryptIDEACmd recovers a message from its ciphertext bits.
func (commandHandler *IDEACommandHandler) DecryptIDEACmd(cmd *cobra.Command, _ []string) error {
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}
	key, err := readKey(cmd)
	if err != nil {
		return err
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return err
	}

	decrypted, err := service.DecryptMessage(cmd.Context(), ciphertext, key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "message: %s\n", decrypted.Message)
	fmt.Fprintf(out, "bits: %s\n", decrypted.Bits)
	return nil
}

// readKey returns the --key value or the contents of --key-file.
func readKey(cmd *cobra.Command) (string, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", fmt.Errorf("invalid key flag: %w", err)
	}
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return "", fmt.Errorf("invalid key-file flag: %w", err)
	}
	if keyFile == "" {
		return key, nil
	}

	content, err := os.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	return string(content), nil
}

// InitIDEACommands registers IDEA-related commands
func InitIDEACommands(rootCmd *cobra.Command) error {
	handler, err := NewIDEACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create IDEA command handler: %w", err)
	}

	rootCmd.PersistentFlags().String(MulConventionFlag, config.MulConventionTextbook,
		"How a zero word is multiplied: textbook (0 stands for 2^16) or literal (0 is zero)")

	var generateIDEAKeyCmd = &cobra.Command{
		Use:   "generate-idea-key",
		Short: "Generate a random 128-bit IDEA key",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateIDEAKeyCmd,
	}
	generateIDEAKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key file")
	rootCmd.AddCommand(generateIDEAKeyCmd)

	var encryptIDEACmd = &cobra.Command{
		Use:   "encrypt-idea",
		Short: "Encrypt an eight-character message using IDEA",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptIDEACmd,
	}
	encryptIDEACmd.Flags().StringP("message", "m", "", "Message of exactly eight bytes")
	encryptIDEACmd.Flags().StringP("key", "k", "", "128-bit key as binary digits (generated when omitted)")
	encryptIDEACmd.Flags().StringP("key-file", "", "", "Path to a file holding the key")
	_ = encryptIDEACmd.MarkFlagRequired("message")
	encryptIDEACmd.MarkFlagsMutuallyExclusive("key", "key-file")
	rootCmd.AddCommand(encryptIDEACmd)

	var decryptIDEACmd = &cobra.Command{
		Use:   "decrypt-idea",
		Short: "Decrypt a 64-bit ciphertext using IDEA",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptIDEACmd,
	}
	decryptIDEACmd.Flags().StringP("ciphertext", "c", "", "64-bit ciphertext as binary digits")
	decryptIDEACmd.Flags().StringP("key", "k", "", "128-bit key as binary digits")
	decryptIDEACmd.Flags().StringP("key-file", "", "", "Path to a file holding the key")
	_ = decryptIDEACmd.MarkFlagRequired("ciphertext")
	decryptIDEACmd.MarkFlagsOneRequired("key", "key-file")
	decryptIDEACmd.MarkFlagsMutuallyExclusive("key", "key-file")
	rootCmd.AddCommand(decryptIDEACmd)

	return nil
}

package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// GetConfigDir get config directory , default is ~/.gjutil/
func GetConfigDir() string {

	configDir := GetHomeDir() + string(os.PathSeparator) + ".gjutil"

	if err := os.MkdirAll(configDir, 0744); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return configDir
}

// GetHomeDir Find home directory.
func GetHomeDir() string {
	// Find home directory.
	idr, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return idr
}

func SetAwsEnvCredentials(accessKey, secretKey string) (err error) {
	err = os.Setenv("AWS_ACCESS_KEY_ID", accessKey)
	if err != nil {
		return
	}

	return os.Setenv("AWS_SECRET_ACCESS_KEY", secretKey)
}

func GetAwsCredentialsFromEnv() (accessKey, secretKey string) {
	return os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
}

// GetAwsCredentialsFromFile reads aws_access_key_id and aws_secret_access_key
// from a yaml file.
func GetAwsCredentialsFromFile(credPath string) (accessKey, secretKey string) {
	v := viper.New()

	v.SetConfigFile(credPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return
	}

	accessKey = v.GetString("aws_access_key_id")
	secretKey = v.GetString("aws_secret_access_key")

	return
}

// ReadLines reads a whole file into memory
// and returns a slice of its non-empty lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

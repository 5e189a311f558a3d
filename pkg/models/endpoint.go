/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"net"
	"strconv"
)

// Endpoint is the upstream Bedrock server the agent keeps a session on.
// It is fixed at startup and never mutated.
type Endpoint struct {
	Host     string `json:"host" yaml:"host" envconfig:"SERVER_HOST"`
	Port     int    `json:"port" yaml:"port" envconfig:"SERVER_PORT"`
	Username string `json:"username" yaml:"username" envconfig:"BOT_USERNAME"`
	Offline  bool   `json:"offline" yaml:"offline" envconfig:"BOT_OFFLINE"`
}

// Address returns host:port, bracketing IPv6 literals.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Address()
}
